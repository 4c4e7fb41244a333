package homework

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

const homeworkColumns = `title, due_date, reminder, deadline, subject_id, is_completed, attachments, description, score`

func timeCol(t *models.Time) any {
	if t == nil {
		return nil
	}
	return t.String()
}

func scanTimeCol(ns sql.NullString) (*models.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := models.ParseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func homeworkArgs(h *models.Homework) []any {
	var score any
	if h.Score != nil {
		score = *h.Score
	}
	return []any{
		h.Title, h.DueDate.UnixMilli(), timeCol(h.Reminder), timeCol(h.Deadline),
		h.SubjectID, h.Completed, dbx.JSONText(h.Attachments), h.Description, score,
	}
}

func scanHomework(scan func(dest ...any) error) (models.Homework, error) {
	var h models.Homework
	var dueMillis int64
	var reminder, deadline sql.NullString
	var score sql.NullInt64
	var attachments string
	if err := scan(&h.ID, &h.Title, &dueMillis, &reminder, &deadline, &h.SubjectID, &h.Completed, &attachments, &h.Description, &score); err != nil {
		return models.Homework{}, err
	}
	h.DueDate = time.UnixMilli(dueMillis).UTC()
	var err error
	if h.Reminder, err = scanTimeCol(reminder); err != nil {
		return models.Homework{}, err
	}
	if h.Deadline, err = scanTimeCol(deadline); err != nil {
		return models.Homework{}, err
	}
	if score.Valid {
		h.Score = &score.Int64
	}
	if h.Attachments, err = dbx.ScanJSONText[models.Attachment](attachments); err != nil {
		return models.Homework{}, err
	}
	return h, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, h *models.Homework) (int64, error) {
	query := `INSERT INTO homework (` + homeworkColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, homeworkArgs(h)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert homework: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	h.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, h *models.Homework) error {
	query := `UPDATE homework SET title=?, due_date=?, reminder=?, deadline=?, subject_id=?, is_completed=?, attachments=?, description=?, score=? WHERE id=?`
	args := append(homeworkArgs(h), h.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update homework: %w", err)
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

func (r *SQLiteRepository) Upsert(ctx context.Context, h *models.Homework) error {
	query := `INSERT INTO homework (id, ` + homeworkColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, due_date=excluded.due_date,
			reminder=excluded.reminder, deadline=excluded.deadline,
			subject_id=excluded.subject_id, is_completed=excluded.is_completed,
			attachments=excluded.attachments, description=excluded.description,
			score=excluded.score`
	args := append([]any{h.ID}, homeworkArgs(h)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert homework: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM homework WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete homework: %w", err)
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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Homework, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, `+homeworkColumns+` FROM homework ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select homework: %w", err)
	}
	defer rows.Close()

	var result []models.Homework
	for rows.Next() {
		h, err := scanHomework(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Homework, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, `+homeworkColumns+` FROM homework WHERE id=?`, id)
	h, err := scanHomework(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &h, nil
}
