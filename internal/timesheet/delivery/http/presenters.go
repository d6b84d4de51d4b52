package http

import (
	"calendar-timesheet/internal/timesheet"
)

// --- Request DTOs ---

type reportReq struct {
	Period    string `form:"period"     binding:"omitempty,oneof=week month custom"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	Export    bool   `form:"export"`
}

func (r reportReq) validate() error { return nil }

func (r reportReq) toInput() timesheet.ReportInput {
	return timesheet.ReportInput{
		PeriodType: r.Period,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Export:     r.Export,
	}
}

// --- Response DTOs ---

type periodResp struct {
	Type                string  `json:"type"`
	Start               string  `json:"start"`
	End                 string  `json:"end"`
	NormHours           float64 `json:"norm_hours"`
	WorkdaysElapsed     int     `json:"workdays_elapsed"`
	HoursElapsed        float64 `json:"hours_elapsed"`
	BillableTargetDays  float64 `json:"billable_target_days"`
	BillableTargetHours float64 `json:"billable_target_hours"`
}

type totalResp struct {
	Hours            float64 `json:"hours"`
	PctOfMonthlyNorm float64 `json:"pct_of_monthly_norm"`
	PctOfElapsedNorm float64 `json:"pct_of_elapsed_norm"`
}

type billableResp struct {
	Hours              float64 `json:"hours"`
	PctOfTotalWorked   float64 `json:"pct_of_total_worked"`
	PctOfMonthlyTarget float64 `json:"pct_of_monthly_target"`
	PctOfElapsedTarget float64 `json:"pct_of_elapsed_target"`
	WithPhaseAndTask   float64 `json:"with_phase_and_task"`
	WithPhaseNoTask    float64 `json:"with_phase_no_task"`
	WithoutPhase       float64 `json:"without_phase"`
}

type nonBillableResp struct {
	Hours            float64 `json:"hours"`
	PctOfTotalWorked float64 `json:"pct_of_total_worked"`
}

type errorMetricsResp struct {
	Hours              float64 `json:"hours"`
	Count              int     `json:"count"`
	PctOfTotalReported float64 `json:"pct_of_total_reported"`
}

type projectResp struct {
	Hours      float64 `json:"hours"`
	Billable   bool    `json:"billable"`
	PctOfTotal float64 `json:"pct_of_total"`
}

type summaryResp struct {
	Period      periodResp             `json:"period"`
	Total       totalResp              `json:"total"`
	Billable    billableResp           `json:"billable"`
	NonBillable nonBillableResp        `json:"non_billable"`
	Errors      errorMetricsResp       `json:"errors"`
	ByProject   map[string]projectResp `json:"by_project"`
}

type errorRecordResp struct {
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Project     string  `json:"project"`
	Phase       string  `json:"phase"`
	Description string  `json:"description"`
	Billable    bool    `json:"billable"`
	Error       string  `json:"error"`
}

type reportResp struct {
	Summary      summaryResp       `json:"summary"`
	ErrorRecords []errorRecordResp `json:"error_records"`
	FilePath     string            `json:"file_path,omitempty"`
	ExportError  string            `json:"export_error,omitempty"`
}

func newReportResp(output timesheet.ReportOutput) reportResp {
	s := output.Summary

	byProject := make(map[string]projectResp, len(s.ByProject))
	for code, p := range s.ByProject {
		byProject[code] = projectResp{
			Hours:      p.Hours,
			Billable:   p.Billable,
			PctOfTotal: p.PctOfTotal,
		}
	}

	records := make([]errorRecordResp, 0, len(output.ErrorRecords))
	for _, r := range output.ErrorRecords {
		records = append(records, errorRecordResp{
			Date:        r.Date,
			Hours:       r.Hours,
			Project:     r.Project,
			Phase:       r.Phase,
			Description: r.Description,
			Billable:    r.Billable,
			Error:       r.Error,
		})
	}

	return reportResp{
		Summary: summaryResp{
			Period: periodResp{
				Type:                s.Period.Type,
				Start:               s.Period.Start,
				End:                 s.Period.End,
				NormHours:           s.Period.NormHours,
				WorkdaysElapsed:     s.Period.WorkdaysElapsed,
				HoursElapsed:        s.Period.HoursElapsed,
				BillableTargetDays:  s.Period.BillableTargetDays,
				BillableTargetHours: s.Period.BillableTargetHours,
			},
			Total: totalResp{
				Hours:            s.Total.Hours,
				PctOfMonthlyNorm: s.Total.PctOfMonthlyNorm,
				PctOfElapsedNorm: s.Total.PctOfElapsedNorm,
			},
			Billable: billableResp{
				Hours:              s.Billable.Hours,
				PctOfTotalWorked:   s.Billable.PctOfTotalWorked,
				PctOfMonthlyTarget: s.Billable.PctOfMonthlyTarget,
				PctOfElapsedTarget: s.Billable.PctOfElapsedTarget,
				WithPhaseAndTask:   s.Billable.WithPhaseAndTask,
				WithPhaseNoTask:    s.Billable.WithPhaseNoTask,
				WithoutPhase:       s.Billable.WithoutPhase,
			},
			NonBillable: nonBillableResp{
				Hours:            s.NonBillable.Hours,
				PctOfTotalWorked: s.NonBillable.PctOfTotalWorked,
			},
			Errors: errorMetricsResp{
				Hours:              s.Errors.Hours,
				Count:              s.Errors.Count,
				PctOfTotalReported: s.Errors.PctOfTotalReported,
			},
			ByProject: byProject,
		},
		ErrorRecords: records,
		FilePath:     output.FilePath,
		ExportError:  output.ExportError,
	}
}

type statusBlockResp struct {
	TotalHours         float64 `json:"total_hours"`
	BillableHours      float64 `json:"billable_hours"`
	NormHours          float64 `json:"norm_hours"`
	ElapsedTarget      float64 `json:"elapsed_target"`
	OnTrackPct         float64 `json:"on_track_pct"`
	BillableOnTrackPct float64 `json:"billable_on_track_pct"`
	WorkdaysElapsed    int     `json:"workdays_elapsed"`
	Errors             int     `json:"errors"`
}

type statusResp struct {
	Week    statusBlockResp `json:"week"`
	Month   statusBlockResp `json:"month"`
	Message string          `json:"message"`
}

func newStatusResp(output timesheet.StatusOutput) statusResp {
	return statusResp{
		Week:    newStatusBlockResp(output.Week),
		Month:   newStatusBlockResp(output.Month),
		Message: output.Message,
	}
}

func newStatusBlockResp(block timesheet.PeriodStatus) statusBlockResp {
	return statusBlockResp{
		TotalHours:         block.TotalHours,
		BillableHours:      block.BillableHours,
		NormHours:          block.NormHours,
		ElapsedTarget:      block.ElapsedTargetHours,
		OnTrackPct:         block.OnTrackPct,
		BillableOnTrackPct: block.BillableOnTrackPct,
		WorkdaysElapsed:    block.WorkdaysElapsed,
		Errors:             block.ErrorCount,
	}
}
