package services

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// SaveLecturer inserts a new lecturer (id 0) or updates an existing one.
func (p *Planner) SaveLecturer(ctx context.Context, l *models.Lecturer) error {
	if err := requireText("name", l.Name); err != nil {
		return err
	}
	if l.ID == 0 {
		_, err := p.store.Lecturers.Insert(ctx, l)
		return err
	}
	return p.store.Lecturers.Update(ctx, l)
}

// DeleteLecturer removes the lecturer; the store cascades to its subjects
// and through them to exams and homework.
func (p *Planner) DeleteLecturer(ctx context.Context, id int64) error {
	return p.store.Lecturers.Delete(ctx, id)
}

func (p *Planner) Lecturers(ctx context.Context) ([]models.Lecturer, error) {
	return p.store.Lecturers.GetAll(ctx)
}

func (p *Planner) Lecturer(ctx context.Context, id int64) (*models.Lecturer, error) {
	return p.store.Lecturers.GetByID(ctx, id)
}
