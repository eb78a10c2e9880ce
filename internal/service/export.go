package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"safe_dashboard/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	logExportFilename = "SAFE_Activity_Log.xlsx"
	logExportSheet    = "Activity Log"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	logExportHeader    = []string{"#", "Time (UTC)", "Type", "Message"}
	logExportColWidths = []float64{6, 22, 12, 70}
)

// ExportLog renders the activity log as a spreadsheet, newest entries first.
// Unlike the incident report this is a plain read: it does not append to the
// log itself.
func (s *ReportService) ExportLog(ctx context.Context) (ReportArtifact, error) {
	entries, err := s.log.List(ctx, time.Time{}, time.Time{}, "")
	if err != nil {
		return ReportArtifact{}, err
	}

	data, err := renderLogWorkbook(entries)
	if err != nil {
		return ReportArtifact{}, fmt.Errorf("render activity log workbook: %w", err)
	}

	return ReportArtifact{
		Filename:    logExportFilename,
		ContentType: xlsxContentType,
		Data:        data,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func renderLogWorkbook(entries []models.LogEntry) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() here: WriteTo needs the file to still be open.

	index, err := f.NewSheet(logExportSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FDE9E9"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, header := range logExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(logExportSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(logExportSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header style: %w", err)
		}
	}

	for i, width := range logExportColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("convert column number: %w", err)
		}
		if err := f.SetColWidth(logExportSheet, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, e := range entries {
		row := i + 2
		values := []any{i + 1, e.OccurredAt.Format("2006-01-02 15:04:05"), e.Type, e.Message}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("convert coordinates: %w", err)
			}
			if err := f.SetCellValue(logExportSheet, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(logExportSheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
