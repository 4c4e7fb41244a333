// Package models defines the planner entity kinds and their shared value
// types. Ids are assigned by the local store on insert; 0 means "not yet
// persisted".
package models

import (
	"fmt"
	"time"
)

// Time is an (hour, minute) time-of-day pair.
type Time struct {
	Hour   int
	Minute int
}

// String renders the time as zero-padded "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On combines the time-of-day with the calendar day of date, keeping the
// date's location.
func (t Time) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, date.Location())
}

// ParseTime parses "HH:MM" back into a Time.
func ParseTime(s string) (Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Time{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return Time{Hour: h, Minute: m}, nil
}

// TimeSpan is a pair of times-of-day bounding an event.
type TimeSpan struct {
	Start Time
	End   Time
}

// OfficeHour is one weekly office-hour interval of a lecturer.
type OfficeHour struct {
	Day   time.Weekday
	Start Time
	End   Time
}

// AttachmentType tags the Attachment variant.
type AttachmentType string

const (
	AttachmentLink  AttachmentType = "link"
	AttachmentImage AttachmentType = "image"
	AttachmentFile  AttachmentType = "file"
)

// Attachment is a tagged reference to external material: a URL for links,
// a storage path for images and files.
type Attachment struct {
	Type   AttachmentType
	Target string
	Title  string
}
