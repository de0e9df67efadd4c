package report

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// TOMLReport renders the snapshot as a TOML document.
type TOMLReport struct{}

// Render produces a TOML string of the snapshot.
func (r *TOMLReport) Render(snap *Snapshot) (string, error) {
	if snap == nil {
		return "", fmt.Errorf("snapshot is nil")
	}

	data, err := toml.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshaling TOML report: %w", err)
	}
	return string(data), nil
}

// Write stores rendered report content at path, creating parent directories
// as needed.
func Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
