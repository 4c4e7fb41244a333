package models

import "time"

// Agenda is a free-form dated reminder. Span bounds the event, Time is a
// single point-in-day reminder; either may be absent.
type Agenda struct {
	ID          int64
	Title       string
	Date        time.Time
	Span        *TimeSpan
	Time        *Time
	Color       int64
	Completed   bool
	Attachments []Attachment
	Description string
}
