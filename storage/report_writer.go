package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"airbnb-insights/models"
	"airbnb-insights/utils"
)

// JSONReportWriter serializes an analysis report as indented JSON,
// overwriting any previous file at the destination path.
type JSONReportWriter struct {
	path   string
	logger *utils.Logger
}

// NewJSONReportWriter creates a writer targeting path.
func NewJSONReportWriter(path string, logger *utils.Logger) *JSONReportWriter {
	return &JSONReportWriter{path: path, logger: logger}
}

// WriteReport writes the report, creating parent directories as needed.
func (w *JSONReportWriter) WriteReport(report *models.Report) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return &WriteError{Path: w.path, Err: fmt.Errorf("encode report: %w", err)}
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return &WriteError{Path: w.path, Err: fmt.Errorf("create output dir: %w", err)}
	}
	if err := os.WriteFile(w.path, append(payload, '\n'), 0644); err != nil {
		return &WriteError{Path: w.path, Err: err}
	}

	w.logger.Info("[storage] Report written to %s", w.path)
	return nil
}
