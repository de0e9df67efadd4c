package cmd

import (
	"context"
	"errors"

	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/launchplot/internal/chart"
	"github.com/papapumpkin/launchplot/internal/config"
	"github.com/papapumpkin/launchplot/internal/ui"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render every configured chart",
	RunE:  runPlot,
}

func init() {
	addDataFlags(plotCmd)
	plotCmd.Flags().String("output-dir", "", "directory to write charts into")

	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	return plotOnce(ctx, cfg, gen, ui.New())
}

// plotOnce loads the data and writes every configured chart. A chart with
// nothing to plot, such as energy in a year without successes, is skipped.
func plotOnce(ctx context.Context, cfg config.Config, gen *chart.Generator, printer *ui.Printer) error {
	r, err := loadRun(ctx, cfg)
	if err != nil {
		return err
	}
	printer.Loaded(cfg.DataDir, r.collection.Len(), len(r.warnings))
	printer.Warnings(r.warnings)

	for _, ch := range cfg.Charts {
		path, err := gen.Render(ch, r.stats)
		if errors.Is(err, chart.ErrNoData) {
			printer.Skipped(ch.Kind, chart.ErrNoData.Error())
			continue
		}
		if err != nil {
			return err
		}
		printer.Wrote(path)
	}
	printer.Summary(r.snapshot())
	return nil
}

// newGenerator builds the chart generator, loading the configured font.
func newGenerator(cfg config.Config) (*chart.Generator, error) {
	var font *truetype.Font
	if cfg.FontPath != "" {
		f, err := chart.LoadFont(cfg.FontPath)
		if err != nil {
			return nil, err
		}
		font = f
	}
	return chart.NewGenerator(cfg.OutputDir, font), nil
}
