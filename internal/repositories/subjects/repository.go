// Package subjects stores subject rows in the local store.
package subjects

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// Repository is the local-store contract for subjects. Deleting a subject
// cascades to its exams and homework.
type Repository interface {
	Insert(ctx context.Context, s *models.Subject) (int64, error)
	Update(ctx context.Context, s *models.Subject) error
	// Upsert inserts or updates by id without firing delete cascades.
	Upsert(ctx context.Context, s *models.Subject) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.Subject, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
}
