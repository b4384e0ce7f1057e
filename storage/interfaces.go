package storage

import "airbnb-insights/models"

// ReportWriter persists a computed analysis report.
type ReportWriter interface {
	WriteReport(report *models.Report) error
}

// RecordWriter persists filtered records in the source column order.
type RecordWriter interface {
	WriteRecords(headers []string, records []models.Record) error
}
