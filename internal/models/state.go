package models

import (
	"fmt"
	"time"
)

// DashboardState is the volatile session snapshot the presentation layer
// renders from. It lives only in memory and resets on process restart.
type DashboardState struct {
	EmergencyActive bool      `json:"emergency_active"`
	ElapsedSeconds  int       `json:"elapsed_seconds"` // ticks up only while EmergencyActive
	Rooms           []Room    `json:"rooms"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FormatElapsed renders a second count as HH:MM:SS. Every field is
// zero-padded to two digits; hours are not wrapped at 24. Negative input
// counts as zero.
func FormatElapsed(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
