// Package loader reads delimited listing files into raw text records.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"airbnb-insights/models"
	"airbnb-insights/utils"
)

// LoadError reports a source file that could not be read or parsed. The run
// stops there; no partial record set is produced.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loader: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader turns CSV listing files into records.
type Loader struct {
	logger *utils.Logger
}

// New creates a Loader with the given logger.
func New(logger *utils.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the CSV at path and returns the header row plus one record per
// data row, in file order. Quoted fields may embed commas and newlines; a
// UTF-8 BOM is tolerated; short rows are padded with empty strings and
// surplus fields are dropped. All values stay raw text.
func (l *Loader) Load(path string) ([]string, []models.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, &LoadError{Path: path, Err: errors.New("missing header row")}
		}
		return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}

	var records []models.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, &LoadError{Path: path, Err: err}
		}
		record := make(models.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}

	l.logger.Info("[loader] Loaded %d records (%d columns) from %s", len(records), len(headers), path)
	l.logger.Debug("[loader] Columns: %s", strings.Join(headers, ", "))
	return headers, records, nil
}
