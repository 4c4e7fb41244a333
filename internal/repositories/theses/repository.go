// Package theses stores thesis rows and their task rows in the local store.
package theses

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/models"
)

// Repository is the local-store contract for theses and their tasks.
// Deleting a thesis cascades to its tasks.
type Repository interface {
	Insert(ctx context.Context, t *models.Thesis) (int64, error)
	Update(ctx context.Context, t *models.Thesis) error
	Upsert(ctx context.Context, t *models.Thesis) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.Thesis, error)
	GetByID(ctx context.Context, id int64) (*models.Thesis, error)

	InsertTask(ctx context.Context, task *models.ThesisTask) (int64, error)
	UpsertTask(ctx context.Context, task *models.ThesisTask) error
	DeleteTask(ctx context.Context, id int64) error
	// DeleteTasksByThesis clears a thesis's tasks; the pull path uses it
	// before re-inserting the embedded task list of a fetched document.
	DeleteTasksByThesis(ctx context.Context, thesisID int64) error
	TasksByThesis(ctx context.Context, thesisID int64) ([]models.ThesisTask, error)
}
