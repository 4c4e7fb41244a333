package lecturers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

const lecturerColumns = `name, photo, phone_numbers, emails, addresses, websites, office_hours`

func lecturerArgs(l *models.Lecturer) []any {
	return []any{
		l.Name, l.Photo,
		dbx.JSONText(l.PhoneNumbers), dbx.JSONText(l.Emails),
		dbx.JSONText(l.Addresses), dbx.JSONText(l.Websites),
		dbx.JSONText(l.OfficeHours),
	}
}

func scanLecturer(scan func(dest ...any) error) (models.Lecturer, error) {
	var l models.Lecturer
	var phones, emails, addresses, websites, officeHours string
	if err := scan(&l.ID, &l.Name, &l.Photo, &phones, &emails, &addresses, &websites, &officeHours); err != nil {
		return models.Lecturer{}, err
	}
	var err error
	if l.PhoneNumbers, err = dbx.ScanJSONText[string](phones); err != nil {
		return models.Lecturer{}, err
	}
	if l.Emails, err = dbx.ScanJSONText[string](emails); err != nil {
		return models.Lecturer{}, err
	}
	if l.Addresses, err = dbx.ScanJSONText[string](addresses); err != nil {
		return models.Lecturer{}, err
	}
	if l.Websites, err = dbx.ScanJSONText[string](websites); err != nil {
		return models.Lecturer{}, err
	}
	if l.OfficeHours, err = dbx.ScanJSONText[models.OfficeHour](officeHours); err != nil {
		return models.Lecturer{}, err
	}
	return l, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, l *models.Lecturer) (int64, error) {
	query := `INSERT INTO lecturers (` + lecturerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, lecturerArgs(l)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lecturer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	l.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, l *models.Lecturer) error {
	query := `UPDATE lecturers SET name=?, photo=?, phone_numbers=?, emails=?, addresses=?, websites=?, office_hours=? WHERE id=?`
	args := append(lecturerArgs(l), l.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update lecturer: %w", err)
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

func (r *SQLiteRepository) Upsert(ctx context.Context, l *models.Lecturer) error {
	query := `INSERT INTO lecturers (id, ` + lecturerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, photo=excluded.photo,
			phone_numbers=excluded.phone_numbers, emails=excluded.emails,
			addresses=excluded.addresses, websites=excluded.websites,
			office_hours=excluded.office_hours`
	args := append([]any{l.ID}, lecturerArgs(l)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert lecturer: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lecturers WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lecturer: %w", err)
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

func (r *SQLiteRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	query := `DELETE FROM lecturers WHERE id IN (` + placeholders + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete lecturers: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Lecturer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, `+lecturerColumns+` FROM lecturers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select lecturers: %w", err)
	}
	defer rows.Close()

	var result []models.Lecturer
	for rows.Next() {
		l, err := scanLecturer(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, `+lecturerColumns+` FROM lecturers WHERE id=?`, id)
	l, err := scanLecturer(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &l, nil
}
