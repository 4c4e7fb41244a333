// Package agenda stores agenda (free-form reminder) rows in the local store.
package agenda

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// Repository is the local-store contract for agenda entries.
type Repository interface {
	Insert(ctx context.Context, a *models.Agenda) (int64, error)
	Update(ctx context.Context, a *models.Agenda) error
	Upsert(ctx context.Context, a *models.Agenda) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.Agenda, error)
	GetByID(ctx context.Context, id int64) (*models.Agenda, error)
}
