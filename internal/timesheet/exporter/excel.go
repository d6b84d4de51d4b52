package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet"
	pkgLog "calendar-timesheet/pkg/log"
)

const exportDateLayout = "02.01.2006"

// Column order of the row sheet, fixed by the downstream import format.
var rowHeaders = []string{
	"Date", "Fact hours", "Project", "Project phase", "Location",
	"Description", "Per diems", "Title", "Comment", "Errors",
}

var rowWidths = []float64{12, 10, 12, 15, 12, 80, 10, 30, 15, 30}

// Excel writes timesheet workbooks: one row sheet in the downstream
// import layout plus a Summary sheet with the period metrics.
type Excel struct {
	l          pkgLog.Logger
	reportsDir string
	now        func() time.Time
}

// New creates a new Excel exporter writing into reportsDir.
func New(l pkgLog.Logger, reportsDir string) *Excel {
	return &Excel{
		l:          l,
		reportsDir: reportsDir,
		now:        time.Now,
	}
}

// WriteReport implements timesheet.Exporter. It renders one row per
// non-excluded entry and returns the path of the written file.
func (e *Excel) WriteReport(ctx context.Context, req timesheet.ExportRequest) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := req.PeriodType + "-to-date"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	if err := e.writeRows(f, sheet, req); err != nil {
		return "", err
	}
	if err := writeSummary(f, req.Summary); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename := fmt.Sprintf("%s_%s_timesheet.xlsx", e.now().Format("2006-01-02"), req.PeriodType)
	path := filepath.Join(e.reportsDir, filename)

	if err := f.SaveAs(path); err != nil {
		e.l.Errorf(ctx, "timesheet.exporter.WriteReport.SaveAs: %v", err)
		return "", fmt.Errorf("save workbook: %w", err)
	}
	e.l.Infof(ctx, "timesheet.exporter.WriteReport: wrote %s", path)
	return path, nil
}

func (e *Excel) writeRows(f *excelize.File, sheet string, req timesheet.ExportRequest) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"CCCCCC"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, header := range rowHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheet, name, name, rowWidths[col]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, entry := range req.Entries {
		if entry.IsExcluded {
			continue
		}
		values := []any{
			entry.Date.Format(exportDateLayout),
			entry.DurationHours,
			entry.ProjectCode,
			entry.PhaseCode,
			req.BaseLocation,
			rowDescription(entry),
			"",
			entry.Position,
			"",
			strings.Join(entry.Errors, "; "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

// rowDescription is "<task> * <description>" when a task code is
// present, the bare description otherwise, falling back to the first
// 100 characters of the raw title.
func rowDescription(entry model.TimeEntry) string {
	switch {
	case entry.TaskCode != "" && entry.Description != "":
		return entry.TaskCode + " * " + entry.Description
	case entry.Description != "":
		return entry.Description
	case len(entry.RawSummary) > 100:
		return entry.RawSummary[:100]
	default:
		return entry.RawSummary
	}
}

func writeSummary(f *excelize.File, summary timesheet.ReportSummary) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	rows := [][2]any{
		{"Time Tracking Report", ""},
		{"Period", summary.Period.Start + " to " + summary.Period.End},
		{"Type", strings.ToUpper(summary.Period.Type)},
		{"", ""},
		{"Total Hours", summary.Total.Hours},
		{"Norm Hours", summary.Period.NormHours},
		{"Progress %", fmt.Sprintf("%v%%", summary.Total.PctOfMonthlyNorm)},
		{"On-track %", fmt.Sprintf("%v%%", summary.Total.PctOfElapsedNorm)},
		{"", ""},
		{"Billable Hours", summary.Billable.Hours},
		{"Non-billable Hours", summary.NonBillable.Hours},
		{"Billable Target", summary.Period.BillableTargetHours},
		{"Billable Progress %", fmt.Sprintf("%v%%", summary.Billable.PctOfMonthlyTarget)},
		{"Billable On-track %", fmt.Sprintf("%v%%", summary.Billable.PctOfElapsedTarget)},
		{"", ""},
		{"Entries with Errors", summary.Errors.Count},
	}
	for i, pair := range rows {
		rowIdx := i + 1
		if err := f.SetCellValue("Summary", fmt.Sprintf("A%d", rowIdx), pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue("Summary", fmt.Sprintf("B%d", rowIdx), pair[1]); err != nil {
			return err
		}
	}
	if err := f.SetColWidth("Summary", "A", "A", 20); err != nil {
		return err
	}
	return f.SetColWidth("Summary", "B", "B", 25)
}
