package theses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aivanenka/studyplanner/internal/common"
	"github.com/aivanenka/studyplanner/internal/dbx"
	"github.com/aivanenka/studyplanner/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanThesis(scan func(dest ...any) error) (models.Thesis, error) {
	var t models.Thesis
	var articles string
	if err := scan(&t.ID, &t.Title, &articles); err != nil {
		return models.Thesis{}, err
	}
	var err error
	if t.Articles, err = dbx.ScanJSONText[string](articles); err != nil {
		return models.Thesis{}, err
	}
	return t, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, t *models.Thesis) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO theses (title, articles) VALUES (?, ?)`,
		t.Title, dbx.JSONText(t.Articles))
	if err != nil {
		return 0, fmt.Errorf("failed to insert thesis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, t *models.Thesis) error {
	res, err := r.db.ExecContext(ctx, `UPDATE theses SET title=?, articles=? WHERE id=?`,
		t.Title, dbx.JSONText(t.Articles), t.ID)
	if err != nil {
		return fmt.Errorf("failed to update thesis: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, t *models.Thesis) error {
	query := `INSERT INTO theses (id, title, articles) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, articles=excluded.articles`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Title, dbx.JSONText(t.Articles)); err != nil {
		return fmt.Errorf("failed to upsert thesis: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM theses WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete thesis: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Thesis, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, articles FROM theses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select theses: %w", err)
	}
	defer rows.Close()

	var result []models.Thesis
	for rows.Next() {
		t, err := scanThesis(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Thesis, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, articles FROM theses WHERE id=?`, id)
	t, err := scanThesis(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &t, nil
}

func (r *SQLiteRepository) InsertTask(ctx context.Context, task *models.ThesisTask) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO thesis_tasks (name, due_date, is_completed, thesis_id) VALUES (?, ?, ?, ?)`,
		task.Name, task.DueDate.UnixMilli(), task.Completed, task.ThesisID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert thesis task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	task.ID = id
	return id, nil
}

func (r *SQLiteRepository) UpsertTask(ctx context.Context, task *models.ThesisTask) error {
	query := `INSERT INTO thesis_tasks (id, name, due_date, is_completed, thesis_id) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, due_date=excluded.due_date,
			is_completed=excluded.is_completed, thesis_id=excluded.thesis_id`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Name, task.DueDate.UnixMilli(), task.Completed, task.ThesisID)
	if err != nil {
		return fmt.Errorf("failed to upsert thesis task: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM thesis_tasks WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete thesis task: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteTasksByThesis(ctx context.Context, thesisID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM thesis_tasks WHERE thesis_id=?`, thesisID); err != nil {
		return fmt.Errorf("failed to delete thesis tasks: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) TasksByThesis(ctx context.Context, thesisID int64) ([]models.ThesisTask, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, due_date, is_completed, thesis_id FROM thesis_tasks WHERE thesis_id=? ORDER BY id`, thesisID)
	if err != nil {
		return nil, fmt.Errorf("failed to select thesis tasks: %w", err)
	}
	defer rows.Close()

	var result []models.ThesisTask
	for rows.Next() {
		var task models.ThesisTask
		var dueMillis int64
		if err := rows.Scan(&task.ID, &task.Name, &dueMillis, &task.Completed, &task.ThesisID); err != nil {
			return nil, err
		}
		task.DueDate = time.UnixMilli(dueMillis).UTC()
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
