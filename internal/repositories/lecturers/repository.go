// Package lecturers stores lecturer rows in the local store.
package lecturers

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// Repository is the local-store contract for lecturers. Deleting a lecturer
// cascades to its subjects (and through them to exams and homework).
type Repository interface {
	Insert(ctx context.Context, l *models.Lecturer) (int64, error)
	Update(ctx context.Context, l *models.Lecturer) error
	// Upsert inserts or updates by id without firing delete cascades.
	Upsert(ctx context.Context, l *models.Lecturer) error
	Delete(ctx context.Context, id int64) error
	// DeleteByIDs removes the local rows whose ids appear in ids. The pull
	// path uses it to clear conflicting rows before re-inserting fetched ones.
	DeleteByIDs(ctx context.Context, ids []int64) error
	GetAll(ctx context.Context) ([]models.Lecturer, error)
	GetByID(ctx context.Context, id int64) (*models.Lecturer, error)
}
