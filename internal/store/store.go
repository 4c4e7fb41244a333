// Package store opens the local SQLite database, applies migrations, and
// bundles the per-kind repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/aivanenka/studyplanner/internal/migrations"
	"github.com/aivanenka/studyplanner/internal/repositories/agenda"
	"github.com/aivanenka/studyplanner/internal/repositories/exams"
	"github.com/aivanenka/studyplanner/internal/repositories/homework"
	"github.com/aivanenka/studyplanner/internal/repositories/lecturers"
	"github.com/aivanenka/studyplanner/internal/repositories/subjects"
	"github.com/aivanenka/studyplanner/internal/repositories/theses"
)

// Store bundles the local repositories over one SQLite handle.
type Store struct {
	DB        *sql.DB
	Lecturers lecturers.Repository
	Subjects  subjects.Repository
	Exams     exams.Repository
	Homework  homework.Repository
	Agenda    agenda.Repository
	Theses    theses.Repository
}

// Open opens (or creates) the database at dsn, enables foreign keys, and
// runs pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection so the pragma below holds for every statement
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db), nil
}

// New wraps an already-migrated handle. Tests use it with in-memory databases.
func New(db *sql.DB) *Store {
	return &Store{
		DB:        db,
		Lecturers: lecturers.NewSQLiteRepository(db),
		Subjects:  subjects.NewSQLiteRepository(db),
		Exams:     exams.NewSQLiteRepository(db),
		Homework:  homework.NewSQLiteRepository(db),
		Agenda:    agenda.NewSQLiteRepository(db),
		Theses:    theses.NewSQLiteRepository(db),
	}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}
