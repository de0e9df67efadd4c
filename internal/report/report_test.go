package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/launchplot/internal/launch"
	"github.com/papapumpkin/launchplot/internal/orbit"
	"github.com/papapumpkin/launchplot/internal/record"
	"github.com/papapumpkin/launchplot/internal/stats"
)

var generated = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testSnapshot returns a snapshot with two groups and one warning.
func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	calc := orbit.NewCalculator(orbit.DefaultConstants())
	physics, err := calc.Evaluate("500km×500km", []float64{1.2})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	c := launch.NewCollection()
	c.Append(launch.Record{
		ID: "2024-001", Manufacturer: "美国", Success: true, PayloadMass: []float64{1.2},
		Time: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Physics: &physics,
	}, record.RawBlock{})
	c.Append(launch.Record{
		ID: "2024-002", Manufacturer: "中国",
		Time: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
	}, record.RawBlock{})
	c.Append(launch.Record{
		ID: "2024-003", Manufacturer: "美国",
		Time: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	}, record.RawBlock{})

	group, err := stats.Selector("country")
	if err != nil {
		t.Fatalf("Selector: %v", err)
	}
	s := stats.Build(c, group, stats.DefaultPalette())

	warnings := []launch.Warning{{
		Kind:   launch.WarnMissingProvider,
		Source: "2024.txt",
		ID:     "2024-002",
		Time:   time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
	}}
	return NewSnapshot(s, warnings, Meta{
		Generated: generated,
		Source:    "launchinfo",
		GroupBy:   "country",
		Window:    launch.Window{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
}

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	if snap.TotalLaunches != 3 || snap.TotalSuccess != 1 || snap.TotalFailure != 2 {
		t.Errorf("totals = %d/%d/%d, want 3/1/2", snap.TotalLaunches, snap.TotalSuccess, snap.TotalFailure)
	}
	if snap.WindowStart != "2024-01-01T00:00:00Z" || snap.WindowEnd != "" {
		t.Errorf("window = %q..%q", snap.WindowStart, snap.WindowEnd)
	}

	names := make([]string, len(snap.Groups))
	for i, g := range snap.Groups {
		names[i] = g.Name
	}
	if diff := cmp.Diff([]string{"美国", "中国"}, names); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}

	us := snap.Groups[0]
	if us.Launches != 2 || us.Success != 1 || us.Failure != 1 || us.MassKg != 1200 {
		t.Errorf("美国 = %+v", us)
	}
	if us.Energy <= 0 || us.DeltaV <= 0 || us.RelativeEnergy <= 0 {
		t.Errorf("美国 physics totals not positive: %+v", us)
	}
	if cn := snap.Groups[1]; cn.Energy != 0 || cn.MassKg != 0 {
		t.Errorf("中国 = %+v, want zero success totals", cn)
	}

	want := WarningEntry{Kind: "missing_provider", Source: "2024.txt", ID: "2024-002", Time: "2024-01-09T00:00:00Z"}
	if diff := cmp.Diff([]WarningEntry{want}, snap.Warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryReport(t *testing.T) {
	t.Parallel()

	out, err := (&SummaryReport{}).Render(testSnapshot(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"# Launch Summary",
		"from `launchinfo`",
		"Window: 2024-01-01T00:00:00Z to open.",
		"3 launches, 1 successful, 2 failed.",
		"| Country | Launches |",
		"| 美国 | 2 | 1 | 1 |",
		"| 1,200 |",
		"| 中国 | 1 | 0 | 1 | 0TJ |",
		"## Warnings (1)",
		"- `missing_provider` 2024.txt 2024-01-09T00:00:00Z id=2024-002",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
	if strings.Index(out, "| 美国") > strings.Index(out, "| 中国") {
		t.Error("groups not in descending launch order")
	}
}

func TestSummaryReportEmpty(t *testing.T) {
	t.Parallel()

	out, err := (&SummaryReport{}).Render(&Snapshot{Generated: generated})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "No launches recorded.") {
		t.Errorf("empty summary = %q", out)
	}
	if strings.Contains(out, "Warnings") {
		t.Error("empty summary lists warnings")
	}
}

func TestJSONReport(t *testing.T) {
	t.Parallel()

	out, err := (&JSONReport{}).Render(testSnapshot(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["group_by"] != "country" {
		t.Errorf("group_by = %v, want country", decoded["group_by"])
	}
	groups, ok := decoded["groups"].([]any)
	if !ok || len(groups) != 2 {
		t.Fatalf("groups = %v, want 2 entries", decoded["groups"])
	}
	if _, ok := decoded["window_end"]; ok {
		t.Error("empty window_end was not omitted")
	}
}

func TestTOMLReportWrite(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	out, err := (&TOMLReport{}).Render(snap)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "[[groups]]") {
		t.Errorf("TOML output has no [[groups]] tables:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "out", "report.toml")
	if err := Write(path, out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded Snapshot
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(snap, &decoded); diff != "" {
		t.Errorf("written snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatByName(t *testing.T) {
	t.Parallel()

	for _, name := range FormatNames() {
		if _, err := FormatByName(name); err != nil {
			t.Errorf("FormatByName(%q): %v", name, err)
		}
	}
	if _, err := FormatByName("yaml"); err == nil {
		t.Error("FormatByName(yaml) returned nil error")
	}
	for _, f := range []Format{&SummaryReport{}, &JSONReport{}, &TOMLReport{}} {
		if _, err := f.Render(nil); err == nil {
			t.Errorf("%T.Render(nil) returned nil error", f)
		}
	}
}
