package services

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// SaveSubject inserts a new subject (id 0) or updates an existing one. The
// lecturer FK is enforced by the store.
func (p *Planner) SaveSubject(ctx context.Context, s *models.Subject) error {
	if err := requireText("name", s.Name); err != nil {
		return err
	}
	if s.ID == 0 {
		_, err := p.store.Subjects.Insert(ctx, s)
		return err
	}
	return p.store.Subjects.Update(ctx, s)
}

// DeleteSubject removes the subject; the store cascades to its exams and
// homework.
func (p *Planner) DeleteSubject(ctx context.Context, id int64) error {
	return p.store.Subjects.Delete(ctx, id)
}

func (p *Planner) Subjects(ctx context.Context) ([]models.Subject, error) {
	return p.store.Subjects.GetAll(ctx)
}

func (p *Planner) Subject(ctx context.Context, id int64) (*models.Subject, error) {
	return p.store.Subjects.GetByID(ctx, id)
}
