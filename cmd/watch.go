package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/launchplot/internal/log"
	"github.com/papapumpkin/launchplot/internal/ui"
	"github.com/papapumpkin/launchplot/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the charts whenever a launch log changes",
	RunE:  runWatch,
}

func init() {
	addDataFlags(watchCmd)
	watchCmd.Flags().String("output-dir", "", "directory to write charts into")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	printer := ui.New()

	ctx, cancel := signalContext()
	defer cancel()

	if err := plotOnce(ctx, cfg, gen, printer); err != nil {
		printer.Error(err.Error())
	}

	w, err := watch.NewWatcher(cfg.DataDir, cfg.FileFilter)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	printer.Info("watching " + cfg.DataDir + " (ctrl-c to stop)")

	for {
		select {
		case <-ctx.Done():
			printer.Info("shutting down...")
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			log.Debug("data file changed", "file", change.File, "kind", change.Kind.String())
			drain(w.Changes)
			if err := plotOnce(ctx, cfg, gen, printer); err != nil {
				printer.Error(err.Error())
			}
		}
	}
}

// drain discards changes already queued so that one rerun covers them.
func drain(ch <-chan watch.Change) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
