package models

import "time"

// Homework is a due-dated task for a subject.
type Homework struct {
	ID          int64
	Title       string
	DueDate     time.Time
	Reminder    *Time
	Deadline    *Time
	SubjectID   int64
	Completed   bool
	Attachments []Attachment
	Description string
	Score       *int64
}
