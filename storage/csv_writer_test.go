package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"airbnb-insights/models"
	"airbnb-insights/utils"
)

func TestCSVWriterKeepsColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "filtered.csv")
	headers := []string{"id", "name", "price"}
	records := []models.Record{
		{"id": "1", "name": "Sunny Loft", "price": "$120"},
		{"id": "2", "name": "Harbour, Studio"},
	}

	if err := NewCSVWriter(path, utils.NewLogger()).WriteRecords(headers, records); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3 (header + 2 records)", len(rows))
	}
	if rows[0][1] != "name" {
		t.Errorf("header row: got %v", rows[0])
	}
	if rows[1][2] != "$120" {
		t.Errorf("first record price: got %q", rows[1][2])
	}
	if rows[2][1] != "Harbour, Studio" {
		t.Errorf("embedded comma not preserved: got %q", rows[2][1])
	}
	if rows[2][2] != "" {
		t.Errorf("missing field should export as empty cell, got %q", rows[2][2])
	}
}
