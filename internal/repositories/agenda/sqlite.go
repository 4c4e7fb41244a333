package agenda

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

const agendaColumns = `title, date, start_time, end_time, time, color, is_completed, attachments, description`

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

func agendaArgs(a *models.Agenda) []any {
	var start, end any
	if a.Span != nil {
		start = a.Span.Start.String()
		end = a.Span.End.String()
	}
	return []any{
		a.Title, a.Date.UnixMilli(), start, end, timeCol(a.Time),
		a.Color, a.Completed, dbx.JSONText(a.Attachments), a.Description,
	}
}

func scanAgenda(scan func(dest ...any) error) (models.Agenda, error) {
	var a models.Agenda
	var dateMillis int64
	var start, end sql.NullString
	var attachments string
	var at sql.NullString
	if err := scan(&a.ID, &a.Title, &dateMillis, &start, &end, &at, &a.Color, &a.Completed, &attachments, &a.Description); err != nil {
		return models.Agenda{}, err
	}
	a.Date = time.UnixMilli(dateMillis).UTC()
	startTime, err := scanTimeCol(start)
	if err != nil {
		return models.Agenda{}, err
	}
	endTime, err := scanTimeCol(end)
	if err != nil {
		return models.Agenda{}, err
	}
	if startTime != nil && endTime != nil {
		a.Span = &models.TimeSpan{Start: *startTime, End: *endTime}
	}
	if a.Time, err = scanTimeCol(at); err != nil {
		return models.Agenda{}, err
	}
	if a.Attachments, err = dbx.ScanJSONText[models.Attachment](attachments); err != nil {
		return models.Agenda{}, err
	}
	return a, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, a *models.Agenda) (int64, error) {
	query := `INSERT INTO agenda (` + agendaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, agendaArgs(a)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert agenda entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, a *models.Agenda) error {
	query := `UPDATE agenda SET title=?, date=?, start_time=?, end_time=?, time=?, color=?, is_completed=?, attachments=?, description=? WHERE id=?`
	args := append(agendaArgs(a), a.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update agenda entry: %w", err)
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

func (r *SQLiteRepository) Upsert(ctx context.Context, a *models.Agenda) error {
	query := `INSERT INTO agenda (id, ` + agendaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, date=excluded.date,
			start_time=excluded.start_time, end_time=excluded.end_time,
			time=excluded.time, color=excluded.color,
			is_completed=excluded.is_completed, attachments=excluded.attachments,
			description=excluded.description`
	args := append([]any{a.ID}, agendaArgs(a)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert agenda entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM agenda WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete agenda entry: %w", err)
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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Agenda, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, `+agendaColumns+` FROM agenda ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select agenda entries: %w", err)
	}
	defer rows.Close()

	var result []models.Agenda
	for rows.Next() {
		a, err := scanAgenda(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Agenda, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, `+agendaColumns+` FROM agenda WHERE id=?`, id)
	a, err := scanAgenda(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &a, nil
}
