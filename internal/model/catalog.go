package model

// Project is a catalog project row. Codes are not globally unique: the
// same code may be registered several times with different structure
// levels (a simplified fallback entry next to the full one).
type Project struct {
	ID             int64
	Code           string
	Description    string
	IsBillable     bool
	Position       string // free-text role label, exported as the Title column
	StructureLevel int    // 1..3: how many parts after the project code are meaningful
}

// Phase belongs to exactly one project; code unique within it.
type Phase struct {
	ID          int64
	ProjectID   int64
	Code        string
	Description string
}

// Task belongs to a phase (or, in legacy layouts, directly to a project).
type Task struct {
	ID          int64
	ProjectID   int64
	PhaseID     int64
	Code        string
	Description string
}

// Norm is the expected total working hours for a calendar month.
type Norm struct {
	Year  int
	Month int
	Hours float64
}

// TargetType selects how a billable target is expressed.
type TargetType string

const (
	TargetPercent TargetType = "percent"
	TargetDays    TargetType = "days"
)

// BillableTarget is the billable goal, either a day count or a percent
// of the norm, converted to hours on demand.
type BillableTarget struct {
	Type  TargetType
	Value float64
}

// Hours converts the target to a full-period hour goal.
func (t BillableTarget) Hours(normHours float64) float64 {
	if t.Type == TargetDays {
		return t.Value * 8
	}
	return normHours * t.Value / 100
}

// ElapsedHours scales the target down to the elapsed portion of the
// period: percent targets follow the elapsed norm proportionally, day
// targets are capped at the elapsed norm.
func (t BillableTarget) ElapsedHours(elapsedNormHours, normHours float64) float64 {
	if t.Type == TargetDays {
		target := t.Hours(normHours)
		if target < elapsedNormHours {
			return target
		}
		return elapsedNormHours
	}
	return elapsedNormHours * t.Value / 100
}
