package handlers

import (
	"context"
	"net/http"
	"time"

	"safe_dashboard/internal/models"
	"safe_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockAlarm struct {
	triggerErr    error
	resetErr      error
	triggerCalled int
	resetCalled   int
}

func (m *mockAlarm) Trigger(ctx context.Context) error {
	m.triggerCalled++
	return m.triggerErr
}
func (m *mockAlarm) Reset(ctx context.Context) error {
	m.resetCalled++
	return m.resetErr
}

type mockMonitoring struct {
	state models.DashboardState
	err   error
}

func (m *mockMonitoring) Snapshot(ctx context.Context) (models.DashboardState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	resp     []models.LogEntry
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.LogEntry, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockReports struct {
	exportArt    service.ReportArtifact
	exportErr    error
	exportLogArt service.ReportArtifact
	exportLogErr error

	exportCalled    int
	exportLogCalled int
}

func (m *mockReports) Export(ctx context.Context) (service.ReportArtifact, error) {
	m.exportCalled++
	return m.exportArt, m.exportErr
}
func (m *mockReports) ExportLog(ctx context.Context) (service.ReportArtifact, error) {
	m.exportLogCalled++
	return m.exportLogArt, m.exportLogErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
