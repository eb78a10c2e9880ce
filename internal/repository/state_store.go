package repository

import (
	"context"
	"sync"
	"time"

	"safe_dashboard/internal/models"
)

// StateMemory is the in-memory session state container. A single mutex
// serializes the ticker goroutine against transition requests; Deactivate
// clears the mode flag and the elapsed counter in one critical section, so
// a tick losing that race can never increment a freshly reset counter.
type StateMemory struct {
	mu    sync.Mutex
	state models.DashboardState
}

var _ StateStore = (*StateMemory)(nil)

// NewStateMemory seeds the container with the safe preset in normal mode.
func NewStateMemory() *StateMemory {
	return &StateMemory{
		state: models.DashboardState{
			EmergencyActive: false,
			ElapsedSeconds:  0,
			Rooms:           models.SafeRooms(),
			UpdatedAt:       time.Now().UTC(),
		},
	}
}

// Snapshot returns a deep copy of the current state.
func (s *StateMemory) Snapshot(ctx context.Context) (models.DashboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked(), nil
}

// Activate raises the emergency flag, zeroes the elapsed counter and swaps
// in the given room table. Returns false without mutating anything when the
// dashboard is already in emergency mode.
func (s *StateMemory) Activate(ctx context.Context, rooms []models.Room, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.EmergencyActive {
		return false, nil
	}
	s.state.EmergencyActive = true
	s.state.ElapsedSeconds = 0
	s.state.Rooms = copyRooms(rooms)
	s.state.UpdatedAt = normalizeUTC(at)
	return true, nil
}

// Deactivate clears the emergency flag, zeroes the elapsed counter and swaps
// in the given room table. Returns false without mutating anything when the
// dashboard is already in normal mode.
func (s *StateMemory) Deactivate(ctx context.Context, rooms []models.Room, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.EmergencyActive {
		return false, nil
	}
	s.state.EmergencyActive = false
	s.state.ElapsedSeconds = 0
	s.state.Rooms = copyRooms(rooms)
	s.state.UpdatedAt = normalizeUTC(at)
	return true, nil
}

// Tick advances the elapsed counter by one second while the emergency flag
// is raised. Outside emergency mode it leaves the counter untouched.
func (s *StateMemory) Tick(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.EmergencyActive {
		return s.state.ElapsedSeconds, nil
	}
	s.state.ElapsedSeconds++
	s.state.UpdatedAt = time.Now().UTC()
	return s.state.ElapsedSeconds, nil
}

func (s *StateMemory) copyLocked() models.DashboardState {
	st := s.state
	st.Rooms = copyRooms(s.state.Rooms)
	return st
}

func copyRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, len(rooms))
	copy(out, rooms)
	return out
}

// normalizeUTC converts non-zero timestamps to UTC, falling back to the
// current instant for zero values.
func normalizeUTC(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
