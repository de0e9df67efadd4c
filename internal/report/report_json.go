package report

import (
	"encoding/json"
	"fmt"
)

// JSONReport renders the snapshot as indented JSON for external tooling.
type JSONReport struct{}

// Render produces a JSON string of the snapshot.
func (r *JSONReport) Render(snap *Snapshot) (string, error) {
	if snap == nil {
		return "", fmt.Errorf("snapshot is nil")
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON report: %w", err)
	}

	return string(data) + "\n", nil
}
