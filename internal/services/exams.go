package services

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/reminders"
)

// SaveExam persists the exam and registers its reminder and deadline
// triggers under the exam's stable ids. The save itself is not rolled back
// when scheduling fails; the error reports which trigger failed.
func (p *Planner) SaveExam(ctx context.Context, e *models.Exam) error {
	if err := requireText("title", e.Title); err != nil {
		return err
	}
	if e.Category == "" {
		e.Category = models.ExamWritten
	}
	if e.ID == 0 {
		if _, err := p.store.Exams.Insert(ctx, e); err != nil {
			return err
		}
	} else if err := p.store.Exams.Update(ctx, e); err != nil {
		return err
	}
	return reminders.ScheduleAll(ctx, p.scheduler, reminders.ForExam(*e))
}

// DeleteExam removes the exam and revokes its triggers.
func (p *Planner) DeleteExam(ctx context.Context, id int64) error {
	if err := p.store.Exams.Delete(ctx, id); err != nil {
		return err
	}
	return reminders.CancelAll(ctx, p.scheduler, id)
}

func (p *Planner) Exams(ctx context.Context) ([]models.Exam, error) {
	return p.store.Exams.GetAll(ctx)
}

func (p *Planner) Exam(ctx context.Context, id int64) (*models.Exam, error) {
	return p.store.Exams.GetByID(ctx, id)
}
