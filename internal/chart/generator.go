package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/freetype/truetype"

	"github.com/papapumpkin/launchplot/internal/config"
	"github.com/papapumpkin/launchplot/internal/stats"
)

// Generator writes chart files into an output directory.
type Generator struct {
	outputDir string
	font      *truetype.Font
	now       func() time.Time
}

// NewGenerator creates a generator writing into outputDir. A nil font uses
// the renderer's built-in font.
func NewGenerator(outputDir string, font *truetype.Font) *Generator {
	return &Generator{
		outputDir: outputDir,
		font:      font,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Render writes the chart described by ch and returns its path.
func (g *Generator) Render(ch config.ChartConfig, s *stats.Statistics) (string, error) {
	format := ch.FormatOrDefault()
	if format != config.FormatPNG && format != config.FormatHTML {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ch.Format)
	}

	write, err := g.writer(ch, format, s)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	filename := filepath.Join(g.outputDir, ch.ChartPath())
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create %s chart file: %w", ch.Kind, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}

// RenderAll writes every chart and returns the written paths. It stops at the
// first failure.
func (g *Generator) RenderAll(charts []config.ChartConfig, s *stats.Statistics) ([]string, error) {
	var files []string
	for _, ch := range charts {
		name, err := g.Render(ch, s)
		if err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

type writeFunc func(f *os.File) error

// writer resolves the plot before any file is created so that a chart with
// no data leaves nothing behind.
func (g *Generator) writer(ch config.ChartConfig, format string, s *stats.Statistics) (writeFunc, error) {
	if ch.Kind == config.KindStatus {
		if len(s.Groups) == 0 {
			return nil, fmt.Errorf("status chart: %w", ErrNoData)
		}
		title := ch.Title
		if title == "" {
			title = fmt.Sprintf("%d年世界航天发射成功与失败统计", yearStart(s.Times[0]).Year())
		}
		if format == config.FormatHTML {
			return func(f *os.File) error { return writeStatusHTML(f, s, title) }, nil
		}
		return func(f *os.File) error { return writeStatusPNG(f, s, title, g.font) }, nil
	}

	p, err := NewPlot(ch.Kind, s, g.now())
	if err != nil {
		return nil, err
	}
	if ch.Title != "" {
		p.Title = ch.Title
	}
	if format == config.FormatHTML {
		return func(f *os.File) error { return writeHTML(f, p) }, nil
	}
	return func(f *os.File) error { return writePNG(f, p, g.font) }, nil
}

// LoadFont parses a TrueType font file for chart text.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	font, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return font, nil
}
