package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"safe_dashboard/internal/models"
)

// logCapacity bounds the activity log; the oldest entries are evicted
// silently once the cap is reached.
const logCapacity = 50

// timeOfDayLayout is the human-readable stamp stored on each entry.
const timeOfDayLayout = "15:04:05"

// LogMemory is the bounded, newest-first in-memory activity log.
type LogMemory struct {
	mu      sync.Mutex
	entries []models.LogEntry
	lastID  int64
}

var _ LogStore = (*LogMemory)(nil)

func NewLogMemory() *LogMemory {
	return &LogMemory{entries: make([]models.LogEntry, 0, logCapacity)}
}

// Append prepends an entry and truncates the log to capacity. Zero fields
// are filled in: OccurredAt defaults to now, Time to the wall-clock stamp of
// OccurredAt, and the ID derives from OccurredAt in Unix milliseconds,
// bumped past the previous ID on collision so IDs stay strictly increasing.
func (l *LogMemory) Append(ctx context.Context, e models.LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}
	if e.Time == "" {
		e.Time = e.OccurredAt.Format(timeOfDayLayout)
	}
	e.Type = strings.ToUpper(strings.TrimSpace(e.Type))
	if e.ID == 0 {
		e.ID = e.OccurredAt.UnixMilli()
	}
	if e.ID <= l.lastID {
		e.ID = l.lastID + 1
	}
	l.lastID = e.ID

	l.entries = append([]models.LogEntry{e}, l.entries...)
	if len(l.entries) > logCapacity {
		l.entries = l.entries[:logCapacity]
	}
	return nil
}

// List returns entries newest-first, bounded to the inclusive [from, to]
// range when the bounds are non-zero and filtered by type when typ is
// non-empty.
func (l *LogMemory) List(ctx context.Context, from, to time.Time, typ string) ([]models.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	typ = strings.ToUpper(strings.TrimSpace(typ))
	out := make([]models.LogEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if !from.IsZero() && e.OccurredAt.Before(from.UTC()) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to.UTC()) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
