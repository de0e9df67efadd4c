// Package ui prints styled status output for the launchplot commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/launchplot/internal/chart"
	"github.com/papapumpkin/launchplot/internal/launch"
	"github.com/papapumpkin/launchplot/internal/report"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan - headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold - warnings
	colorSuccess = lipgloss.Color("#00E676") // Green - written files
	colorDanger  = lipgloss.Color("#FF5252") // Red - errors
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray - secondary text
)

// Status icons.
const (
	iconDone    = "✓"
	iconFailed  = "✗"
	iconWarning = "⚠"
)

// Printer writes styled output, normally to stderr.
type Printer struct {
	w io.Writer

	heading lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	muted   lipgloss.Style
	cell    lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return NewWriter(os.Stderr)
}

// NewWriter returns a Printer writing to w. Colors are enabled only when w
// is a terminal that supports them.
func NewWriter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Foreground(colorPrimary).Bold(true),
		success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		warning: r.NewStyle().Foreground(colorAccent).Bold(true),
		danger:  r.NewStyle().Foreground(colorDanger).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		cell:    r.NewStyle().Padding(0, 1),
		header:  r.NewStyle().Padding(0, 1).Foreground(colorPrimary).Bold(true),
		border:  r.NewStyle().Foreground(colorMuted),
	}
}

// Loaded reports how many launches were parsed.
func (p *Printer) Loaded(dir string, launches, warnings int) {
	fmt.Fprintf(p.w, "%s %s launches from %s",
		p.heading.Render("◆ loaded"), humanize.Comma(int64(launches)), dir)
	if warnings > 0 {
		fmt.Fprintf(p.w, " %s", p.muted.Render(fmt.Sprintf("(%d warning(s))", warnings)))
	}
	fmt.Fprintln(p.w)
}

// Summary prints the per-group totals table.
func (p *Printer) Summary(snap *report.Snapshot) {
	fmt.Fprintf(p.w, "\n%s %s launches, %s successful, %s failed\n",
		p.heading.Render("launch summary:"),
		humanize.Comma(int64(snap.TotalLaunches)),
		p.success.Render(humanize.Comma(int64(snap.TotalSuccess))),
		p.danger.Render(humanize.Comma(int64(snap.TotalFailure))))
	if len(snap.Groups) == 0 {
		fmt.Fprintln(p.w, p.muted.Render("  (no launches)"))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers("group", "launches", "success", "failure", "energy", "mass").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})
	for _, g := range snap.Groups {
		t.Row(
			g.Name,
			strconv.Itoa(g.Launches),
			strconv.Itoa(g.Success),
			strconv.Itoa(g.Failure),
			chart.FormatEnergy(float64(g.Energy)),
			humanize.Comma(g.MassKg)+" kg",
		)
	}
	fmt.Fprintln(p.w, t.Render())
}

// Warnings prints every data-quality warning.
func (p *Printer) Warnings(ws []launch.Warning) {
	if len(ws) == 0 {
		return
	}
	fmt.Fprintf(p.w, "%s\n", p.warning.Render(fmt.Sprintf("%s %d data warning(s)", iconWarning, len(ws))))
	for _, w := range ws {
		fmt.Fprintf(p.w, "  %s %s\n", p.warning.Render("•"), w.String())
	}
}

// Wrote reports a written output file.
func (p *Printer) Wrote(path string) {
	fmt.Fprintf(p.w, "%s %s\n", p.success.Render(iconDone+" wrote"), path)
}

// Skipped reports a chart that was not written.
func (p *Printer) Skipped(kind, reason string) {
	fmt.Fprintf(p.w, "%s %s chart: %s\n", p.warning.Render(iconWarning+" skipped"), kind, reason)
}

// Valid reports a clean validation run.
func (p *Printer) Valid(launches int) {
	fmt.Fprintf(p.w, "%s %s launches, no errors\n", p.success.Render(iconDone+" valid"), humanize.Comma(int64(launches)))
}

// Info prints a secondary message.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.muted.Render(msg))
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.danger.Render(iconFailed+" error:"), msg)
}
