package services

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/reminders"
)

// SaveHomework persists the homework item and registers its reminder and
// deadline triggers.
func (p *Planner) SaveHomework(ctx context.Context, h *models.Homework) error {
	if err := requireText("title", h.Title); err != nil {
		return err
	}
	if h.ID == 0 {
		if _, err := p.store.Homework.Insert(ctx, h); err != nil {
			return err
		}
	} else if err := p.store.Homework.Update(ctx, h); err != nil {
		return err
	}
	return reminders.ScheduleAll(ctx, p.scheduler, reminders.ForHomework(*h))
}

// CompleteHomework marks the item done and revokes its triggers; a finished
// task should not fire reminders.
func (p *Planner) CompleteHomework(ctx context.Context, id int64) error {
	h, err := p.store.Homework.GetByID(ctx, id)
	if err != nil {
		return err
	}
	h.Completed = true
	if err := p.store.Homework.Update(ctx, h); err != nil {
		return err
	}
	return reminders.CancelAll(ctx, p.scheduler, id)
}

// DeleteHomework removes the item and revokes its triggers.
func (p *Planner) DeleteHomework(ctx context.Context, id int64) error {
	if err := p.store.Homework.Delete(ctx, id); err != nil {
		return err
	}
	return reminders.CancelAll(ctx, p.scheduler, id)
}

func (p *Planner) HomeworkItems(ctx context.Context) ([]models.Homework, error) {
	return p.store.Homework.GetAll(ctx)
}

func (p *Planner) HomeworkItem(ctx context.Context, id int64) (*models.Homework, error) {
	return p.store.Homework.GetByID(ctx, id)
}
