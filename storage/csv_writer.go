package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"airbnb-insights/models"
	"airbnb-insights/utils"
)

// CSVWriter exports filtered records to a CSV file in the source column
// order. Each write recreates the file from scratch.
type CSVWriter struct {
	path   string
	logger *utils.Logger
}

// NewCSVWriter creates a writer targeting path.
func NewCSVWriter(path string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{path: path, logger: logger}
}

// WriteRecords writes the header row followed by one row per record, with
// missing fields as empty cells. Intermediate directories are created
// automatically.
func (c *CSVWriter) WriteRecords(headers []string, records []models.Record) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return &WriteError{Path: c.path, Err: fmt.Errorf("create output dir: %w", err)}
	}

	f, err := os.Create(c.path)
	if err != nil {
		return &WriteError{Path: c.path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return &WriteError{Path: c.path, Err: fmt.Errorf("write header: %w", err)}
	}
	for _, r := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = r[h]
		}
		if err := w.Write(row); err != nil {
			return &WriteError{Path: c.path, Err: fmt.Errorf("write row: %w", err)}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &WriteError{Path: c.path, Err: err}
	}

	c.logger.Info("[storage] %d filtered records written to %s", len(records), c.path)
	return nil
}
