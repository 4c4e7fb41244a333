package services

import (
	"context"

	"github.com/aivanenka/studyplanner/internal/common"
	"github.com/aivanenka/studyplanner/internal/models"
)

// SaveThesis inserts a new thesis (id 0) or updates an existing one.
func (p *Planner) SaveThesis(ctx context.Context, t *models.Thesis) error {
	if err := requireText("title", t.Title); err != nil {
		return err
	}
	if t.ID == 0 {
		_, err := p.store.Theses.Insert(ctx, t)
		return err
	}
	return p.store.Theses.Update(ctx, t)
}

// DeleteThesis removes the thesis; the store cascades to its tasks.
func (p *Planner) DeleteThesis(ctx context.Context, id int64) error {
	return p.store.Theses.Delete(ctx, id)
}

// SaveThesisTask inserts or updates one task of a thesis.
func (p *Planner) SaveThesisTask(ctx context.Context, task *models.ThesisTask) error {
	if err := requireText("name", task.Name); err != nil {
		return err
	}
	if task.ID == 0 {
		_, err := p.store.Theses.InsertTask(ctx, task)
		return err
	}
	return p.store.Theses.UpsertTask(ctx, task)
}

// CompleteThesisTask marks one task done.
func (p *Planner) CompleteThesisTask(ctx context.Context, thesisID, taskID int64) error {
	tasks, err := p.store.Theses.TasksByThesis(ctx, thesisID)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = true
			return p.store.Theses.UpsertTask(ctx, &tasks[i])
		}
	}
	return common.ErrNotFound
}

// DeleteThesisTask removes one task.
func (p *Planner) DeleteThesisTask(ctx context.Context, id int64) error {
	return p.store.Theses.DeleteTask(ctx, id)
}

func (p *Planner) Theses(ctx context.Context) ([]models.Thesis, error) {
	return p.store.Theses.GetAll(ctx)
}

func (p *Planner) Thesis(ctx context.Context, id int64) (*models.Thesis, error) {
	return p.store.Theses.GetByID(ctx, id)
}

func (p *Planner) ThesisTasks(ctx context.Context, thesisID int64) ([]models.ThesisTask, error) {
	return p.store.Theses.TasksByThesis(ctx, thesisID)
}
