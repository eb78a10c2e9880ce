package service

import (
	"context"
	"time"

	"safe_dashboard/internal/models"
	"safe_dashboard/internal/repository"
)

type MonitoringService struct {
	state repository.StateStore
}

func NewMonitoringService(state repository.StateStore) *MonitoringService {
	return &MonitoringService{state: state}
}

// Snapshot returns a read-only copy of the dashboard state for handlers, the
// websocket stream, and the report generator.
func (s *MonitoringService) Snapshot(ctx context.Context) (models.DashboardState, error) {
	state, err := s.state.Snapshot(ctx)
	if err != nil {
		return models.DashboardState{}, err
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
