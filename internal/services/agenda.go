package services

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/reminders"
)

// SaveAgenda persists the agenda entry and registers its time and span
// triggers.
func (p *Planner) SaveAgenda(ctx context.Context, a *models.Agenda) error {
	if err := requireText("title", a.Title); err != nil {
		return err
	}
	if a.ID == 0 {
		if _, err := p.store.Agenda.Insert(ctx, a); err != nil {
			return err
		}
	} else if err := p.store.Agenda.Update(ctx, a); err != nil {
		return err
	}
	return reminders.ScheduleAll(ctx, p.scheduler, reminders.ForAgenda(*a))
}

// CompleteAgenda marks the entry done and revokes its triggers.
func (p *Planner) CompleteAgenda(ctx context.Context, id int64) error {
	a, err := p.store.Agenda.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Completed = true
	if err := p.store.Agenda.Update(ctx, a); err != nil {
		return err
	}
	return reminders.CancelAll(ctx, p.scheduler, id)
}

// DeleteAgenda removes the entry and revokes its triggers.
func (p *Planner) DeleteAgenda(ctx context.Context, id int64) error {
	if err := p.store.Agenda.Delete(ctx, id); err != nil {
		return err
	}
	return reminders.CancelAll(ctx, p.scheduler, id)
}

func (p *Planner) AgendaEntries(ctx context.Context) ([]models.Agenda, error) {
	return p.store.Agenda.GetAll(ctx)
}

func (p *Planner) AgendaEntry(ctx context.Context, id int64) (*models.Agenda, error) {
	return p.store.Agenda.GetByID(ctx, id)
}
