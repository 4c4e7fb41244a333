package subjects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const subjectColumns = `name, color, room, description, lecturer_id, secondary_lecturer_id`

func subjectArgs(s *models.Subject) []any {
	var secondary any
	if s.SecondaryLecturerID != nil {
		secondary = *s.SecondaryLecturerID
	}
	return []any{s.Name, s.Color, s.Room, s.Description, s.LecturerID, secondary}
}

func scanSubject(scan func(dest ...any) error) (models.Subject, error) {
	var s models.Subject
	var secondary sql.NullInt64
	if err := scan(&s.ID, &s.Name, &s.Color, &s.Room, &s.Description, &s.LecturerID, &secondary); err != nil {
		return models.Subject{}, err
	}
	if secondary.Valid {
		s.SecondaryLecturerID = &secondary.Int64
	}
	return s, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, s *models.Subject) (int64, error) {
	query := `INSERT INTO subjects (` + subjectColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, subjectArgs(s)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert subject: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, s *models.Subject) error {
	query := `UPDATE subjects SET name=?, color=?, room=?, description=?, lecturer_id=?, secondary_lecturer_id=? WHERE id=?`
	args := append(subjectArgs(s), s.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
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

func (r *SQLiteRepository) Upsert(ctx context.Context, s *models.Subject) error {
	query := `INSERT INTO subjects (id, ` + subjectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, color=excluded.color,
			room=excluded.room, description=excluded.description,
			lecturer_id=excluded.lecturer_id,
			secondary_lecturer_id=excluded.secondary_lecturer_id`
	args := append([]any{s.ID}, subjectArgs(s)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert subject: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Subject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, `+subjectColumns+` FROM subjects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select subjects: %w", err)
	}
	defer rows.Close()

	var result []models.Subject
	for rows.Next() {
		s, err := scanSubject(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, `+subjectColumns+` FROM subjects WHERE id=?`, id)
	s, err := scanSubject(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &s, nil
}
