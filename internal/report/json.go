package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robustlab/advreport/internal/engine"
)

// WriteAnalysis writes the report model as indented JSON, creating the
// destination directory when needed.
func WriteAnalysis(path string, model *engine.ReportModel) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}
