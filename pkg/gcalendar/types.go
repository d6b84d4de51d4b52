package gcalendar

import "time"

// EventTime mirrors the Google Calendar start/end payload: timed events
// carry DateTime (RFC 3339 with offset), all-day events carry Date only.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// RawEvent is a calendar event as handed to the timesheet parser.
// Summary is the user-typed title, the parse target.
type RawEvent struct {
	Summary string    `json:"summary"`
	Start   EventTime `json:"start"`
	End     EventTime `json:"end"`
}

// IsAllDay reports whether the event is an all-day event: start carries
// a date and no dateTime.
func (e RawEvent) IsAllDay() bool {
	return e.Start.Date != "" && e.Start.DateTime == ""
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
