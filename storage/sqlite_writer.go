package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"airbnb-insights/models"
	"airbnb-insights/utils"
)

// SQLiteWriter exports filtered records into a fresh SQLite database file,
// one TEXT column per source column. Any previous file is replaced.
type SQLiteWriter struct {
	path   string
	logger *utils.Logger
}

// NewSQLiteWriter creates a writer targeting path.
func NewSQLiteWriter(path string, logger *utils.Logger) *SQLiteWriter {
	return &SQLiteWriter{path: path, logger: logger}
}

// WriteRecords recreates the listings table and inserts every record.
func (s *SQLiteWriter) WriteRecords(headers []string, records []models.Record) error {
	if len(headers) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("create output dir: %w", err)}
	}
	_ = os.Remove(s.path)

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("open database: %w", err)}
	}
	defer db.Close()

	defs := make([]string, 0, len(headers))
	quoted := make([]string, 0, len(headers))
	for _, h := range headers {
		defs = append(defs, quoteIdent(h)+" TEXT")
		quoted = append(quoted, quoteIdent(h))
	}
	if _, err := db.Exec(`CREATE TABLE "listings" (` + strings.Join(defs, ",") + `)`); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("create table: %w", err)}
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(headers)), ",")
	stmt, err := db.Prepare(`INSERT INTO "listings" (` + strings.Join(quoted, ",") + `) VALUES (` + placeholders + `)`)
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("prepare insert: %w", err)}
	}
	defer stmt.Close()

	for _, r := range records {
		args := make([]any, 0, len(headers))
		for _, h := range headers {
			args = append(args, r[h])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return &WriteError{Path: s.path, Err: fmt.Errorf("insert row: %w", err)}
		}
	}

	s.logger.Info("[storage] %d filtered records written to %s (table: listings)", len(records), s.path)
	return nil
}

// quoteIdent escapes a column name for use as a SQL identifier; embedded
// double quotes are doubled per the SQL standard.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
