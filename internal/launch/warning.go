package launch

import (
	"fmt"
	"time"
)

// WarningKind classifies a data-quality warning.
type WarningKind string

const (
	// WarnZeroEnergy marks a successful launch whose total energy rounds to 0.
	WarnZeroEnergy WarningKind = "zero_energy"
	// WarnMissingProvider marks a launch without a launch provider.
	WarnMissingProvider WarningKind = "missing_provider"
	// WarnMissingOrbit marks a successful launch with no orbit field.
	WarnMissingOrbit WarningKind = "missing_orbit"
	// WarnUnparseableOrbit marks a successful launch whose orbit could not be
	// evaluated.
	WarnUnparseableOrbit WarningKind = "unparseable_orbit"
)

// Warning is a non-fatal data-quality finding, carrying enough context to
// locate the source record.
type Warning struct {
	Kind        WarningKind
	Source      string
	ID          string
	Time        time.Time
	PayloadInfo string
	Detail      string
}

// String renders the warning on a single line.
func (w Warning) String() string {
	s := fmt.Sprintf("%s: %s id=%q time=%s", w.Source, w.Kind, w.ID, w.Time.Format(time.RFC3339))
	if w.PayloadInfo != "" {
		s += fmt.Sprintf(" payload=%q", w.PayloadInfo)
	}
	if w.Detail != "" {
		s += " (" + w.Detail + ")"
	}
	return s
}

func newWarning(kind WarningKind, r Record, detail string) Warning {
	return Warning{
		Kind:        kind,
		ID:          r.ID,
		Time:        r.Time,
		PayloadInfo: r.PayloadInfo,
		Detail:      detail,
	}
}
