package usecase

import (
	"math"
	"strings"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet"
)

const hoursPerWorkday = 8.0

// Per-project fallback bucket for entries without a resolved project.
const untrackedBucket = "UNTRACKED"

type aggregationInput struct {
	Entries         []model.TimeEntry
	NormHours       float64
	Target          model.BillableTarget
	WorkdaysElapsed int
}

type aggregation struct {
	Total        timesheet.TotalMetrics
	Billable     timesheet.BillableMetrics
	NonBillable  timesheet.NonBillableMetrics
	Errors       timesheet.ErrorMetrics
	ByProject    map[string]timesheet.ProjectBreakdown
	ErrorRecords []timesheet.ErrorRecord

	ElapsedNormHours    float64
	BillableTargetHours float64
}

// aggregate computes the full metric set from parsed entries. Internal
// math runs at full precision; hours round to 2 decimals and
// percentages to 1 on the way out. All ratios guard against a zero
// denominator and yield 0.
func aggregate(in aggregationInput) aggregation {
	var (
		totalHours    float64
		billableHours float64
		errorHours    float64
		errorCount    int

		withPhaseAndTask float64
		withPhaseNoTask  float64
		withoutPhase     float64
	)

	byProject := make(map[string]timesheet.ProjectBreakdown)
	var errorRecords []timesheet.ErrorRecord

	for _, e := range in.Entries {
		if e.IsExcluded {
			continue
		}

		if e.HasErrors() {
			errorHours += e.DurationHours
			errorCount++
			errorRecords = append(errorRecords, newErrorRecord(e))
		} else if e.IsValid() {
			totalHours += e.DurationHours
			if e.IsBillable {
				billableHours += e.DurationHours
				switch {
				case e.PhaseCode != "" && e.TaskCode != "":
					withPhaseAndTask += e.DurationHours
				case e.PhaseCode != "":
					withPhaseNoTask += e.DurationHours
				default:
					withoutPhase += e.DurationHours
				}
			}
		}

		code := e.ProjectCode
		if code == "" {
			code = untrackedBucket
		}
		bucket, seen := byProject[code]
		if !seen {
			// Billability is fixed on first encounter; later entries
			// resolving the same code differently do not flip it.
			bucket.Billable = e.ProjectCode != "" && e.IsBillable
		}
		bucket.Hours += e.DurationHours
		byProject[code] = bucket
	}

	nonBillableHours := totalHours - billableHours
	elapsedNorm := float64(in.WorkdaysElapsed) * hoursPerWorkday
	targetHours := in.Target.Hours(in.NormHours)
	elapsedTarget := in.Target.ElapsedHours(elapsedNorm, in.NormHours)

	for code, bucket := range byProject {
		bucket.PctOfTotal = round1(pct(bucket.Hours, totalHours))
		bucket.Hours = round2(bucket.Hours)
		byProject[code] = bucket
	}

	return aggregation{
		Total: timesheet.TotalMetrics{
			Hours:            round2(totalHours),
			PctOfMonthlyNorm: round1(pct(totalHours, in.NormHours)),
			PctOfElapsedNorm: round1(pct(totalHours, elapsedNorm)),
		},
		Billable: timesheet.BillableMetrics{
			Hours:              round2(billableHours),
			PctOfTotalWorked:   round1(pct(billableHours, totalHours)),
			PctOfMonthlyTarget: round1(pct(billableHours, targetHours)),
			PctOfElapsedTarget: round1(pct(billableHours, elapsedTarget)),
			WithPhaseAndTask:   round2(withPhaseAndTask),
			WithPhaseNoTask:    round2(withPhaseNoTask),
			WithoutPhase:       round2(withoutPhase),
		},
		NonBillable: timesheet.NonBillableMetrics{
			Hours:            round2(nonBillableHours),
			PctOfTotalWorked: round1(pct(nonBillableHours, totalHours)),
		},
		Errors: timesheet.ErrorMetrics{
			Hours:              round2(errorHours),
			Count:              errorCount,
			PctOfTotalReported: round1(pct(errorHours, totalHours+errorHours)),
		},
		ByProject:           byProject,
		ErrorRecords:        errorRecords,
		ElapsedNormHours:    elapsedNorm,
		BillableTargetHours: round2(targetHours),
	}
}

// newErrorRecord turns an errored entry into the actionable "fix this
// calendar entry" row shown to the user.
func newErrorRecord(e model.TimeEntry) timesheet.ErrorRecord {
	description := e.Description
	if description == "" {
		description = truncate(e.RawSummary, 100)
	}
	return timesheet.ErrorRecord{
		Date:        e.Date.Format(dateLayout),
		Hours:       e.DurationHours,
		Project:     e.ProjectCode,
		Phase:       e.PhaseCode,
		Description: description,
		Billable:    e.IsBillable,
		Error:       e.Errors[0],
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}

func pct(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
