package models

import "time"

// Activity log entry types.
const (
	EventAlert  = "ALERT"
	EventReset  = "RESET"
	EventReport = "REPORT"
)

// LogEntry is a single audit record. Never mutated after creation.
type LogEntry struct {
	ID         int64     `json:"id"`          // derived from creation timestamp, strictly increasing
	OccurredAt time.Time `json:"occurred_at"` // UTC
	Time       string    `json:"time"`        // human-readable, captured at creation
	Type       string    `json:"type"`        // ALERT | RESET | REPORT
	Message    string    `json:"message"`
}
