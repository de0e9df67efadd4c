package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/launchplot/internal/chart"
)

// SummaryReport renders a markdown table of per-group totals followed by the
// data-quality warnings.
type SummaryReport struct{}

// Render produces the markdown summary.
func (r *SummaryReport) Render(snap *Snapshot) (string, error) {
	if snap == nil {
		return "", fmt.Errorf("snapshot is nil")
	}

	var b strings.Builder

	b.WriteString("# Launch Summary\n\n")
	fmt.Fprintf(&b, "Generated %s", snap.Generated.Format(time.RFC3339))
	if snap.Source != "" {
		fmt.Fprintf(&b, " from `%s`", snap.Source)
	}
	b.WriteString(".\n")
	if snap.WindowStart != "" || snap.WindowEnd != "" {
		fmt.Fprintf(&b, "Window: %s to %s.\n", orOpen(snap.WindowStart), orOpen(snap.WindowEnd))
	}
	fmt.Fprintf(&b, "\n%s launches, %s successful, %s failed.\n",
		humanize.Comma(int64(snap.TotalLaunches)),
		humanize.Comma(int64(snap.TotalSuccess)),
		humanize.Comma(int64(snap.TotalFailure)))

	if len(snap.Groups) == 0 {
		b.WriteString("\nNo launches recorded.\n")
	} else {
		fmt.Fprintf(&b, "\n| %s | Launches | Success | Failure | Energy | Δv (km/s) | Mass (kg) |\n", groupHeader(snap.GroupBy))
		b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
		for _, g := range snap.Groups {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %s | %s | %s |\n",
				g.Name, g.Launches, g.Success, g.Failure,
				chart.FormatEnergy(float64(g.Energy)),
				humanize.CommafWithDigits(float64(g.DeltaV)/1000, 2),
				humanize.Comma(g.MassKg))
		}
	}

	if len(snap.Warnings) > 0 {
		fmt.Fprintf(&b, "\n## Warnings (%d)\n\n", len(snap.Warnings))
		for _, w := range snap.Warnings {
			fmt.Fprintf(&b, "- `%s` %s %s", w.Kind, w.Source, w.Time)
			if w.ID != "" {
				fmt.Fprintf(&b, " id=%s", w.ID)
			}
			if w.Detail != "" {
				fmt.Fprintf(&b, ": %s", w.Detail)
			}
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func groupHeader(groupBy string) string {
	if groupBy == "" {
		return "Group"
	}
	return strings.ToUpper(groupBy[:1]) + groupBy[1:]
}

func orOpen(s string) string {
	if s == "" {
		return "open"
	}
	return s
}
