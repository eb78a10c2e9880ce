package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"safe_dashboard/internal/models"
	"safe_dashboard/internal/repository"

	"github.com/go-pdf/fpdf"
)

const (
	reportFilename = "SAFE_Incident_Log.pdf"
	reportMessage  = "Incident report downloaded"

	reportBanner = "S.A.F.E. INCIDENT REPORT"
	systemName   = "S.A.F.E. Smart Alert & Fire Evaluation"
	systemRole   = "Facility Monitoring Dashboard"

	modeLabelEmergency = "EMERGENCY ACTIVE"
	modeLabelNormal    = "NORMAL OPERATION"

	recommendEmergency = "Evacuate all personnel immediately and alert the local fire department. Keep clear of affected rooms until responders arrive."
	recommendNormal    = "All rooms operate within normal parameters. No action required, continue routine monitoring."
)

// reportRow is one rendered room line.
type reportRow struct {
	Name   string
	Status string
	Temp   string
	Smoke  string
	Kind   string
}

// reportDoc is the assembled report content, kept separate from the PDF
// renderer so the selection rules stay testable without parsing PDF output.
type reportDoc struct {
	Banner         string
	SystemName     string
	SystemRole     string
	GeneratedAt    time.Time
	ModeLabel      string
	Elapsed        string
	Rows           []reportRow
	Recommendation string
}

// ReportService generates the downloadable artifacts from the live state.
type ReportService struct {
	state repository.StateStore
	log   repository.LogStore
}

func NewReportService(state repository.StateStore, log repository.LogStore) *ReportService {
	return &ReportService{state: state, log: log}
}

// Export renders the incident report for the current dashboard state. The
// REPORT log entry is appended only after a successful render; a failed
// render leaves the session state untouched.
func (s *ReportService) Export(ctx context.Context) (ReportArtifact, error) {
	state, err := s.state.Snapshot(ctx)
	if err != nil {
		return ReportArtifact{}, err
	}

	generatedAt := time.Now().UTC()
	data, err := renderPDF(buildReportDoc(state, generatedAt))
	if err != nil {
		return ReportArtifact{}, fmt.Errorf("render report: %w", err)
	}

	if err := s.log.Append(ctx, models.LogEntry{
		OccurredAt: generatedAt,
		Type:       models.EventReport,
		Message:    reportMessage,
	}); err != nil {
		return ReportArtifact{}, err
	}

	return ReportArtifact{
		Filename:    reportFilename,
		ContentType: "application/pdf",
		Data:        data,
		GeneratedAt: generatedAt,
	}, nil
}

// buildReportDoc assembles the report content for a state snapshot. Rooms
// appear in collection order; the recommendation is selected by mode alone.
func buildReportDoc(st models.DashboardState, generatedAt time.Time) reportDoc {
	doc := reportDoc{
		Banner:         reportBanner,
		SystemName:     systemName,
		SystemRole:     systemRole,
		GeneratedAt:    generatedAt.UTC(),
		ModeLabel:      modeLabelNormal,
		Elapsed:        models.FormatElapsed(st.ElapsedSeconds),
		Recommendation: recommendNormal,
	}
	if st.EmergencyActive {
		doc.ModeLabel = modeLabelEmergency
		doc.Recommendation = recommendEmergency
	}
	for _, r := range st.Rooms {
		doc.Rows = append(doc.Rows, reportRow{
			Name:   r.Name,
			Status: r.Status,
			Temp:   fmt.Sprintf("%d °C", r.TemperatureC),
			Smoke:  fmt.Sprintf("%d%%", r.SmokeLevel),
			Kind:   r.Kind,
		})
	}
	return doc
}

// renderPDF lays the document out on a single A4 portrait page.
func renderPDF(doc reportDoc) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Pin document dates to the generation instant so identical snapshots
	// render to identical bytes.
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.SetTitle(doc.Banner, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, doc.Banner, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, doc.SystemName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, doc.SystemRole, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated: "+doc.GeneratedAt.Format("2006-01-02 15:04:05")+" UTC", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Mode: "+doc.ModeLabel, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Time elapsed: "+doc.Elapsed, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	const (
		nameW   = 45.0
		statusW = 85.0
		tempW   = 30.0
		smokeW  = 30.0
		rowH    = 8.0
	)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(nameW, rowH, "Room", "B", 0, "L", false, 0, "")
	pdf.CellFormat(statusW, rowH, "Status", "B", 0, "L", false, 0, "")
	pdf.CellFormat(tempW, rowH, "Temperature", "B", 0, "R", false, 0, "")
	pdf.CellFormat(smokeW, rowH, "Smoke", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetDrawColor(200, 200, 200)
	for _, row := range doc.Rows {
		r, g, b := rowColor(row.Kind)
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(nameW, rowH, row.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(statusW, rowH, row.Status, "", 0, "L", false, 0, "")
		pdf.CellFormat(tempW, rowH, tr(row.Temp), "", 0, "R", false, 0, "")
		pdf.CellFormat(smokeW, rowH, row.Smoke, "", 1, "R", false, 0, "")

		x, y := pdf.GetX(), pdf.GetY()
		pdf.Line(x, y, x+nameW+statusW+tempW+smokeW, y)
	}

	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Recommendation", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, doc.Recommendation, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rowColor maps a room kind to its table text color.
func rowColor(kind string) (int, int, int) {
	switch kind {
	case models.KindFire:
		return 200, 0, 0
	case models.KindSafe:
		return 0, 140, 0
	default:
		return 0, 0, 0
	}
}
