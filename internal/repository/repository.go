package repository

import (
	"context"
	"time"

	"safe_dashboard/internal/models"
)

// StateStore is the session state container. It owns the single mutable
// DashboardState and exposes only the two mode transitions, the gated tick,
// and a read-only snapshot; callers never mutate its fields directly.
type StateStore interface {
	Snapshot(ctx context.Context) (models.DashboardState, error)
	Activate(ctx context.Context, rooms []models.Room, at time.Time) (bool, error)
	Deactivate(ctx context.Context, rooms []models.Room, at time.Time) (bool, error)
	Tick(ctx context.Context) (int, error)
}

// LogStore is the bounded, newest-first activity log.
type LogStore interface {
	Append(ctx context.Context, e models.LogEntry) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.LogEntry, error)
}

// OperatorStore holds dashboard operator accounts.
type OperatorStore interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.Operator, error)
}

type Repository struct {
	State     StateStore
	Log       LogStore
	Operators OperatorStore
}

// NewRepository wires the in-memory stores. All session data is volatile:
// the dashboard comes up in normal mode with the safe preset on every
// process start.
func NewRepository() *Repository {
	return &Repository{
		State:     NewStateMemory(),
		Log:       NewLogMemory(),
		Operators: NewOperatorMemory(),
	}
}
