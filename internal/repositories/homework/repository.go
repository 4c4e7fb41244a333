// Package homework stores homework rows in the local store.
package homework

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// Repository is the local-store contract for homework.
type Repository interface {
	Insert(ctx context.Context, h *models.Homework) (int64, error)
	Update(ctx context.Context, h *models.Homework) error
	Upsert(ctx context.Context, h *models.Homework) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.Homework, error)
	GetByID(ctx context.Context, id int64) (*models.Homework, error)
}
