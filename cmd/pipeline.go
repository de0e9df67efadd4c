package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/launchplot/internal/config"
	"github.com/papapumpkin/launchplot/internal/launch"
	"github.com/papapumpkin/launchplot/internal/log"
	"github.com/papapumpkin/launchplot/internal/orbit"
	"github.com/papapumpkin/launchplot/internal/report"
	"github.com/papapumpkin/launchplot/internal/stats"
)

// run is the outcome of loading and aggregating the configured data.
type run struct {
	cfg        config.Config
	collection *launch.Collection
	warnings   []launch.Warning
	stats      *stats.Statistics
}

// addDataFlags registers the flags shared by every command that loads data.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("data-dir", "", "directory holding launch-log files")
	cmd.Flags().String("filter", "", "only read files whose name contains this")
	cmd.Flags().String("group-by", "", "group selector: "+strings.Join(stats.SelectorNames(), ", "))
}

// loadConfig reads the config and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if cmd.Flags().Changed("filter") {
		cfg.FileFilter, _ = cmd.Flags().GetString("filter")
	}
	if v, _ := cmd.Flags().GetString("group-by"); v != "" {
		cfg.GroupBy = v
	}
	if cmd.Flags().Lookup("output-dir") != nil {
		if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
			cfg.OutputDir = v
		}
	}
	return cfg, nil
}

// loadRun parses every matching file and builds the grouped statistics.
func loadRun(ctx context.Context, cfg config.Config) (*run, error) {
	group, err := stats.Selector(cfg.GroupBy)
	if err != nil {
		return nil, err
	}
	window, err := cfg.Window()
	if err != nil {
		return nil, err
	}

	loader := &launch.Loader{
		Dir:    cfg.DataDir,
		Filter: cfg.FileFilter,
		Parser: &launch.Parser{
			Calc:   orbit.NewCalculator(cfg.Constants()),
			Window: window,
		},
		Workers: cfg.Workers,
	}

	start := time.Now()
	c, warnings, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading launches: %w", err)
	}
	for _, w := range warnings {
		log.Warn("data warning", "kind", string(w.Kind), "source", w.Source, "id", w.ID, "detail", w.Detail)
	}
	log.Info("loaded launches", "dir", cfg.DataDir, "launches", c.Len(), "warnings", len(warnings), "elapsed", time.Since(start))

	return &run{
		cfg:        cfg,
		collection: c,
		warnings:   warnings,
		stats:      stats.Build(c, group, stats.DefaultPalette()),
	}, nil
}

// snapshot summarizes the run for reports.
func (r *run) snapshot() *report.Snapshot {
	window, _ := r.cfg.Window()
	return report.NewSnapshot(r.stats, r.warnings, report.Meta{
		Generated: time.Now(),
		Source:    r.cfg.DataDir,
		GroupBy:   r.cfg.GroupBy,
		Window:    window,
	})
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
