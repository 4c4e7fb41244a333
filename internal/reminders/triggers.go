// Package reminders derives absolute, stably identified notification
// triggers from the optional time fields of an event and hands them to a
// scheduling backend.
//
// Stable id namespaces, per entity id:
//
//	id          reminder offset
//	id + 100000 deadline time-of-day
//	id*100 + 1  span start
//	id*100 + 2  span end
//
// The namespaces cannot collide for ids in normal ranges; ids beyond about
// two million can wrap into the deadline namespace and are not guarded.
package reminders

import (
	"fmt"
	"time"

	"github.com/aivanenka/studyplanner/internal/models"
)

const deadlineIDOffset = 100000

// Trigger is one unit of scheduled reminder work.
type Trigger struct {
	ID          int64
	At          time.Time
	Label       string // names the trigger in scheduling failures
	Title       string
	Description string
}

// Event is the derivation input: the base date plus whichever optional time
// fields the entity carries. ID must be the persisted id, never 0.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Reminder    *models.Time
	Deadline    *models.Time
	Span        *models.TimeSpan
}

// Derive maps the event's present time fields to triggers. Absent fields
// produce no trigger; an event with none produces an empty slice.
func Derive(e Event) []Trigger {
	var triggers []Trigger
	if e.Reminder != nil {
		triggers = append(triggers, Trigger{
			ID:          e.ID,
			At:          e.Reminder.On(e.Date),
			Label:       fmt.Sprintf("reminder for %q", e.Title),
			Title:       e.Title,
			Description: e.Description,
		})
	}
	if e.Deadline != nil {
		triggers = append(triggers, Trigger{
			ID:          e.ID + deadlineIDOffset,
			At:          e.Deadline.On(e.Date),
			Label:       fmt.Sprintf("deadline for %q", e.Title),
			Title:       e.Title,
			Description: e.Description,
		})
	}
	if e.Span != nil {
		triggers = append(triggers,
			Trigger{
				ID:          e.ID*100 + 1,
				At:          e.Span.Start.On(e.Date),
				Label:       fmt.Sprintf("start of %q", e.Title),
				Title:       e.Title,
				Description: e.Description,
			},
			Trigger{
				ID:          e.ID*100 + 2,
				At:          e.Span.End.On(e.Date),
				Label:       fmt.Sprintf("end of %q", e.Title),
				Title:       e.Title,
				Description: e.Description,
			})
	}
	return triggers
}

// ForExam builds the derivation input for an exam.
func ForExam(e models.Exam) []Trigger {
	return Derive(Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Reminder:    e.Reminder,
		Deadline:    e.Deadline,
	})
}

// ForHomework builds the derivation input for a homework item.
func ForHomework(h models.Homework) []Trigger {
	return Derive(Event{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Date:        h.DueDate,
		Reminder:    h.Reminder,
		Deadline:    h.Deadline,
	})
}

// ForAgenda builds the derivation input for an agenda entry. The single
// time-of-day acts as the reminder offset.
func ForAgenda(a models.Agenda) []Trigger {
	return Derive(Event{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		Reminder:    a.Time,
		Span:        a.Span,
	})
}

// StableIDs lists every id the entity's triggers may occupy, for cancellation.
func StableIDs(entityID int64) []int64 {
	return []int64{entityID, entityID + deadlineIDOffset, entityID*100 + 1, entityID*100 + 2}
}
