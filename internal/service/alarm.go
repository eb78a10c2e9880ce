package service

import (
	"context"
	"errors"
	"time"

	"safe_dashboard/internal/models"
	"safe_dashboard/internal/repository"
)

// Fixed activity log messages for the two transitions.
const (
	alertMessage = "CRITICAL ALERT: fire and smoke detected, emergency protocol engaged"
	resetMessage = "System reset: all rooms back to normal operation"
)

// Domain errors for alarm flows.
var (
	ErrEmergencyActive    = errors.New("emergency protocol is already active")
	ErrEmergencyNotActive = errors.New("no active emergency to reset")
)

// AlarmService owns the two mode transitions. Each transition swaps the full
// room table between the fixed presets and appends exactly one log entry; a
// repeated transition in the same direction is rejected without mutation.
type AlarmService struct {
	state repository.StateStore
	log   repository.LogStore
}

func NewAlarmService(state repository.StateStore, log repository.LogStore) *AlarmService {
	return &AlarmService{state: state, log: log}
}

// Trigger switches the dashboard from normal to emergency mode: incident
// preset in, elapsed counter restarted, one ALERT entry appended.
func (s *AlarmService) Trigger(ctx context.Context) error {
	now := time.Now().UTC()

	changed, err := s.state.Activate(ctx, models.IncidentRooms(), now)
	if err != nil {
		return err
	}
	if !changed {
		return ErrEmergencyActive
	}

	return s.log.Append(ctx, models.LogEntry{
		OccurredAt: now,
		Type:       models.EventAlert,
		Message:    alertMessage,
	})
}

// Reset switches the dashboard from emergency back to normal mode: safe
// preset in, elapsed counter zeroed, one RESET entry appended.
func (s *AlarmService) Reset(ctx context.Context) error {
	now := time.Now().UTC()

	changed, err := s.state.Deactivate(ctx, models.SafeRooms(), now)
	if err != nil {
		return err
	}
	if !changed {
		return ErrEmergencyNotActive
	}

	return s.log.Append(ctx, models.LogEntry{
		OccurredAt: now,
		Type:       models.EventReset,
		Message:    resetMessage,
	})
}
