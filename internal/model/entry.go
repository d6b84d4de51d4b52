package model

import "time"

// ParsedSummary is the result of parsing one event title. It is never
// persisted; reports recompute it from raw events on every call.
type ParsedSummary struct {
	ProjectCode string
	ProjectID   int64
	PhaseCode   string
	TaskCode    string
	Description string
	IsBillable  bool
	Position    string
	Errors      []string
	RawSummary  string
	IsExcluded  bool
}

// IsValid reports whether a project was identified and no error was
// recorded while parsing.
func (p ParsedSummary) IsValid() bool {
	return p.ProjectCode != "" && len(p.Errors) == 0
}

// HasErrors reports whether any parsing error was recorded.
func (p ParsedSummary) HasErrors() bool {
	return len(p.Errors) > 0
}

// TimeEntry is a parsed summary anchored to the event's start date with
// a computed duration.
type TimeEntry struct {
	ParsedSummary

	Date          time.Time
	DurationHours float64
	IsAllDay      bool
}
