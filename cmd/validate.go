package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/launchplot/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse the launch logs and list data-quality warnings",
	Long: "Validate parses every matching launch-log file and prints data-quality " +
		"warnings. A malformed record or unparseable time exits non-zero.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()

		r, err := loadRun(ctx, cfg)
		if err != nil {
			return err
		}
		printer := ui.New()
		printer.Warnings(r.warnings)
		printer.Valid(r.collection.Len())
		return nil
	},
}

func init() {
	addDataFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
