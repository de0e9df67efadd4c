package report

import (
	"time"

	"github.com/papapumpkin/launchplot/internal/launch"
	"github.com/papapumpkin/launchplot/internal/stats"
)

// Snapshot is the serializable summary of one aggregation run.
type Snapshot struct {
	Generated     time.Time      `toml:"generated" json:"generated"`
	Source        string         `toml:"source" json:"source"`
	GroupBy       string         `toml:"group_by" json:"group_by"`
	WindowStart   string         `toml:"window_start,omitempty" json:"window_start,omitempty"`
	WindowEnd     string         `toml:"window_end,omitempty" json:"window_end,omitempty"`
	TotalLaunches int            `toml:"total_launches" json:"total_launches"`
	TotalSuccess  int            `toml:"total_success" json:"total_success"`
	TotalFailure  int            `toml:"total_failure" json:"total_failure"`
	Groups        []GroupSummary `toml:"groups" json:"groups"`
	Warnings      []WarningEntry `toml:"warnings" json:"warnings"`
}

// GroupSummary holds one group's final cumulative values.
type GroupSummary struct {
	Name           string `toml:"name" json:"name"`
	Color          string `toml:"color" json:"color"`
	Launches       int    `toml:"launches" json:"launches"`
	Success        int    `toml:"success" json:"success"`
	Failure        int    `toml:"failure" json:"failure"`
	Energy         int64  `toml:"energy" json:"energy"`                   // 10 MJ
	RelativeEnergy int64  `toml:"relative_energy" json:"relative_energy"` // 10 kJ/kg
	DeltaV         int64  `toml:"delta_v" json:"delta_v"`                 // m/s
	MassKg         int64  `toml:"mass_kg" json:"mass_kg"`
}

// WarningEntry is the serializable form of a data-quality warning.
type WarningEntry struct {
	Kind        string `toml:"kind" json:"kind"`
	Source      string `toml:"source" json:"source"`
	ID          string `toml:"id" json:"id"`
	Time        string `toml:"time" json:"time"`
	PayloadInfo string `toml:"payload_info,omitempty" json:"payload_info,omitempty"`
	Detail      string `toml:"detail,omitempty" json:"detail,omitempty"`
}

// Meta describes the run that produced the statistics.
type Meta struct {
	Generated time.Time
	Source    string
	GroupBy   string
	Window    launch.Window
}

// NewSnapshot summarizes s. Groups are listed in descending order of launch
// count.
func NewSnapshot(s *stats.Statistics, warnings []launch.Warning, meta Meta) *Snapshot {
	snap := &Snapshot{
		Generated:     meta.Generated.UTC(),
		Source:        meta.Source,
		GroupBy:       meta.GroupBy,
		WindowStart:   formatBound(meta.Window.Start),
		WindowEnd:     formatBound(meta.Window.End),
		TotalLaunches: s.TotalSuccess + s.TotalFailure,
		TotalSuccess:  s.TotalSuccess,
		TotalFailure:  s.TotalFailure,
		Groups:        make([]GroupSummary, 0, len(s.Groups)),
		Warnings:      make([]WarningEntry, 0, len(warnings)),
	}

	energy := s.EnergySteps.Last()
	relative := s.RelativeEnergySteps.Last()
	deltaV := s.DeltaVSteps.Last()
	mass := s.MassSteps.Last()
	for _, j := range s.Descending {
		snap.Groups = append(snap.Groups, GroupSummary{
			Name:           s.Groups[j],
			Color:          s.Colors[j],
			Launches:       s.Overall[j],
			Success:        s.Success[j],
			Failure:        s.Failure[j],
			Energy:         energy[j],
			RelativeEnergy: relative[j],
			DeltaV:         deltaV[j],
			MassKg:         mass[j],
		})
	}

	for _, w := range warnings {
		snap.Warnings = append(snap.Warnings, WarningEntry{
			Kind:        string(w.Kind),
			Source:      w.Source,
			ID:          w.ID,
			Time:        w.Time.UTC().Format(time.RFC3339),
			PayloadInfo: w.PayloadInfo,
			Detail:      w.Detail,
		})
	}
	return snap
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
