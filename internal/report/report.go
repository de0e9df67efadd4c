// Package report renders a statistics snapshot for humans or tools.
package report

import "fmt"

// Format defines how a snapshot is rendered into a human- or
// machine-readable string.
type Format interface {
	// Render produces the full report content from the snapshot.
	Render(snap *Snapshot) (string, error)
}

// FormatByName returns the Format implementation for the given name.
// Supported names: summary, json, toml.
func FormatByName(name string) (Format, error) {
	switch name {
	case "summary":
		return &SummaryReport{}, nil
	case "json":
		return &JSONReport{}, nil
	case "toml":
		return &TOMLReport{}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %q", name)
	}
}

// FormatNames returns the list of all supported report format names.
func FormatNames() []string {
	return []string{"summary", "json", "toml"}
}
