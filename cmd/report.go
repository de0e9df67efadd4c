package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/launchplot/internal/report"
	"github.com/papapumpkin/launchplot/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print per-group launch totals",
	RunE:  runReport,
}

func init() {
	addDataFlags(reportCmd)
	reportCmd.Flags().String("format", "summary", "report format: "+strings.Join(report.FormatNames(), ", "))
	reportCmd.Flags().String("out", "", "write the report to this file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := report.FormatByName(name)
	if err != nil {
		return err
	}

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

	content, err := format.Render(r.snapshot())
	if err != nil {
		return fmt.Errorf("rendering %s report: %w", name, err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := report.Write(out, content); err != nil {
		return err
	}
	ui.New().Wrote(out)
	return nil
}
