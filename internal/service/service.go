package service

import (
	"context"
	"time"

	"safe_dashboard/internal/models"
	"safe_dashboard/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Alarm exposes the two mode transitions: raise the emergency and reset it.
type Alarm interface {
	Trigger(ctx context.Context) error
	Reset(ctx context.Context) error
}

// Monitoring exposes the read-only dashboard snapshot.
type Monitoring interface {
	Snapshot(ctx context.Context) (models.DashboardState, error)
}

// EventLog exposes the activity log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.LogEntry, error)
}

// Ticker runs the background loop that advances the emergency counter.
// Stop via context cancellation in main() for graceful shutdown.
type Ticker interface {
	Run(ctx context.Context, tick time.Duration)
}

// Reports produces downloadable artifacts: the incident report PDF and the
// activity log workbook.
type Reports interface {
	Export(ctx context.Context) (ReportArtifact, error)
	ExportLog(ctx context.Context) (ReportArtifact, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Alarm
	Monitoring
	EventLog
	Ticker
	Reports
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Alarm:         NewAlarmService(repos.State, repos.Log),
		Monitoring:    NewMonitoringService(repos.State),
		EventLog:      NewEventLogService(repos.Log),
		Ticker:        NewTickerService(repos.State),
		Reports:       NewReportService(repos.State, repos.Log),
		Authorization: NewAuthService(repos.Operators),
	}
}
