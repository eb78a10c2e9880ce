package service

import "time"

// LogFilter supports activity log filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "ALERT", "RESET", "REPORT"
}

// ReportArtifact is a generated download: the incident report PDF or the
// activity log workbook.
type ReportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
	GeneratedAt time.Time
}
