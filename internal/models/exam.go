package models

import "time"

// ExamCategory classifies how an exam is taken.
type ExamCategory string

const (
	ExamWritten   ExamCategory = "written"
	ExamOral      ExamCategory = "oral"
	ExamPractical ExamCategory = "practical"
)

// Exam is a dated exam for a subject. Reminder is a relative offset from the
// exam date's midnight; Deadline is an absolute time-of-day on the same day.
type Exam struct {
	ID          int64
	Title       string
	Date        time.Time
	Reminder    *Time
	Deadline    *Time
	SubjectID   int64
	Category    ExamCategory
	Score       *int64
	Attachments []Attachment
	Description string
}
