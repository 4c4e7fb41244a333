// Package exams stores exam rows in the local store.
package exams

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// Repository is the local-store contract for exams.
type Repository interface {
	Insert(ctx context.Context, e *models.Exam) (int64, error)
	Update(ctx context.Context, e *models.Exam) error
	Upsert(ctx context.Context, e *models.Exam) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.Exam, error)
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
}
