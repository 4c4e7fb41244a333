package exams

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

const examColumns = `title, date, reminder, deadline, subject_id, category, score, attachments, description`

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

func examArgs(e *models.Exam) []any {
	var score any
	if e.Score != nil {
		score = *e.Score
	}
	return []any{
		e.Title, e.Date.UnixMilli(), timeCol(e.Reminder), timeCol(e.Deadline),
		e.SubjectID, string(e.Category), score,
		dbx.JSONText(e.Attachments), e.Description,
	}
}

func scanExam(scan func(dest ...any) error) (models.Exam, error) {
	var e models.Exam
	var dateMillis int64
	var reminder, deadline sql.NullString
	var score sql.NullInt64
	var category, attachments string
	if err := scan(&e.ID, &e.Title, &dateMillis, &reminder, &deadline, &e.SubjectID, &category, &score, &attachments, &e.Description); err != nil {
		return models.Exam{}, err
	}
	e.Date = time.UnixMilli(dateMillis).UTC()
	e.Category = models.ExamCategory(category)
	var err error
	if e.Reminder, err = scanTimeCol(reminder); err != nil {
		return models.Exam{}, err
	}
	if e.Deadline, err = scanTimeCol(deadline); err != nil {
		return models.Exam{}, err
	}
	if score.Valid {
		e.Score = &score.Int64
	}
	if e.Attachments, err = dbx.ScanJSONText[models.Attachment](attachments); err != nil {
		return models.Exam{}, err
	}
	return e, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Exam) (int64, error) {
	query := `INSERT INTO exams (` + examColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, examArgs(e)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert exam: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.Exam) error {
	query := `UPDATE exams SET title=?, date=?, reminder=?, deadline=?, subject_id=?, category=?, score=?, attachments=?, description=? WHERE id=?`
	args := append(examArgs(e), e.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
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

func (r *SQLiteRepository) Upsert(ctx context.Context, e *models.Exam) error {
	query := `INSERT INTO exams (id, ` + examColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, date=excluded.date,
			reminder=excluded.reminder, deadline=excluded.deadline,
			subject_id=excluded.subject_id, category=excluded.category,
			score=excluded.score, attachments=excluded.attachments,
			description=excluded.description`
	args := append([]any{e.ID}, examArgs(e)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert exam: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exams WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Exam, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, `+examColumns+` FROM exams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select exams: %w", err)
	}
	defer rows.Close()

	var result []models.Exam
	for rows.Next() {
		e, err := scanExam(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, `+examColumns+` FROM exams WHERE id=?`, id)
	e, err := scanExam(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &e, nil
}
