package repository

// GetPhaseOptions scopes a phase lookup to one project.
type GetPhaseOptions struct {
	ProjectID int64
	Code      string
}

// GetTaskOptions scopes a task lookup to one project.
type GetTaskOptions struct {
	ProjectID int64
	Code      string
}

// Well-known settings keys.
const (
	SettingWorkCalendar        = "work_calendar"
	SettingBillableTargetType  = "billable_target_type"
	SettingBillableTargetValue = "billable_target_value"
	SettingBaseLocation        = "base_location"
)
