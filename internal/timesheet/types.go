package timesheet

import "calendar-timesheet/internal/model"

// Period types accepted by Report.
const (
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

// ReportInput is the input for the full report operation.
type ReportInput struct {
	PeriodType string // week, month or custom
	StartDate  string // YYYY-MM-DD, custom only
	EndDate    string // YYYY-MM-DD, custom only
	Export     bool   // also write the spreadsheet
}

// PeriodInfo describes the resolved reporting period.
type PeriodInfo struct {
	Type                string
	Start               string
	End                 string
	NormHours           float64
	WorkdaysElapsed     int
	HoursElapsed        float64
	BillableTargetDays  float64
	BillableTargetHours float64
}

// TotalMetrics covers all valid hours in the period.
type TotalMetrics struct {
	Hours            float64
	PctOfMonthlyNorm float64
	PctOfElapsedNorm float64
}

// BillableMetrics covers the billable subset, including the
// completeness sub-split used for data-quality review.
type BillableMetrics struct {
	Hours              float64
	PctOfTotalWorked   float64
	PctOfMonthlyTarget float64
	PctOfElapsedTarget float64
	WithPhaseAndTask   float64
	WithPhaseNoTask    float64
	WithoutPhase       float64
}

// NonBillableMetrics covers valid non-billable hours.
type NonBillableMetrics struct {
	Hours            float64
	PctOfTotalWorked float64
}

// ErrorMetrics covers hours tied to unparseable entries.
type ErrorMetrics struct {
	Hours              float64
	Count              int
	PctOfTotalReported float64
}

// ProjectBreakdown is one project's share of the period.
type ProjectBreakdown struct {
	Hours      float64
	Billable   bool
	PctOfTotal float64
}

// ReportSummary is the aggregated report payload.
type ReportSummary struct {
	Period      PeriodInfo
	Total       TotalMetrics
	Billable    BillableMetrics
	NonBillable NonBillableMetrics
	Errors      ErrorMetrics
	ByProject   map[string]ProjectBreakdown
}

// ErrorRecord is one actionable "fix this calendar entry" row.
type ErrorRecord struct {
	Date        string
	Hours       float64
	Project     string
	Phase       string
	Description string
	Billable    bool
	Error       string
}

// ReportOutput is the result of the Report operation.
type ReportOutput struct {
	Summary      ReportSummary
	ErrorRecords []ErrorRecord
	FilePath     string // set when Export was requested and succeeded
	ExportError  string // non-fatal export failure, if any
}

// PeriodStatus is one condensed metric block of the status shorthand.
type PeriodStatus struct {
	TotalHours         float64
	BillableHours      float64
	NormHours          float64
	ElapsedTargetHours float64
	OnTrackPct         float64
	BillableOnTrackPct float64
	WorkdaysElapsed    int
	ErrorCount         int
}

// StatusOutput is the result of the Status operation.
type StatusOutput struct {
	Week    PeriodStatus
	Month   PeriodStatus
	Message string
}

// ExportRequest hands row-level entries to the spreadsheet collaborator.
type ExportRequest struct {
	PeriodType   string
	Entries      []model.TimeEntry
	Summary      ReportSummary
	BaseLocation string
}
