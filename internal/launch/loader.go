package launch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/papapumpkin/launchplot/internal/log"
)

// DefaultWorkers bounds concurrent file parsing when Loader.Workers is unset.
const DefaultWorkers = 4

// Loader reads every matching launch-log file in a directory.
type Loader struct {
	// Dir is the directory holding launch-log files.
	Dir string

	// Filter keeps only files whose name contains it. Empty keeps all.
	Filter string

	// Parser parses each file.
	Parser *Parser

	// Workers bounds the number of files parsed at once.
	Workers int
}

// fileResult is the parse output of one file.
type fileResult struct {
	name       string
	collection *Collection
	warnings   []Warning
}

// Files returns the matching file paths in name order.
func (l *Loader) Files() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.Dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), l.Filter) {
			continue
		}
		files = append(files, filepath.Join(l.Dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Load parses all matching files concurrently, merges them in file-name
// order and sorts the result by launch time. The first failing file aborts
// the load.
func (l *Loader) Load(ctx context.Context) (*Collection, []Warning, error) {
	files, err := l.Files()
	if err != nil {
		return nil, nil, err
	}

	parser := l.Parser
	if parser == nil {
		parser = &Parser{}
	}
	workers := l.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	p := pool.NewWithResults[fileResult]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(workers)

	for _, path := range files {
		p.Go(func(ctx context.Context) (fileResult, error) {
			if err := ctx.Err(); err != nil {
				return fileResult{}, err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fileResult{}, fmt.Errorf("reading %s: %w", path, err)
			}
			name := filepath.Base(path)
			c, ws, err := parser.ParseText(name, string(data))
			if err != nil {
				return fileResult{}, err
			}
			log.Debug("parsed launch file", "file", name, "records", c.Len(), "warnings", len(ws))
			return fileResult{name: name, collection: c, warnings: ws}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, nil, err
	}

	// Results arrive in completion order.
	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })

	parts := make([]*Collection, len(results))
	var warnings []Warning
	for i, r := range results {
		parts[i] = r.collection
		warnings = append(warnings, r.warnings...)
	}

	merged := Merge(parts...)
	merged.SortByTime()
	return merged, warnings, nil
}
