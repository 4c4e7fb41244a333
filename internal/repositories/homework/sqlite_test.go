package homework_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/repositories/homework"
	"github.com/aivanenka/studyplanner/internal/repositories/lecturers"
	"github.com/aivanenka/studyplanner/internal/repositories/subjects"
	"github.com/aivanenka/studyplanner/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(context.Background(), db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertSubject(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	ctx := context.Background()
	lecturer := models.Lecturer{Name: "Dr. Weber"}
	_, err := lecturers.NewSQLiteRepository(db).Insert(ctx, &lecturer)
	require.NoError(t, err)
	subject := models.Subject{Name: "Databases", LecturerID: lecturer.ID}
	id, err := subjects.NewSQLiteRepository(db).Insert(ctx, &subject)
	require.NoError(t, err)
	return id
}

func TestInsertAndGetByID_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := homework.NewSQLiteRepository(db)
	ctx := context.Background()

	hw := models.Homework{
		Title:     "ER diagram",
		DueDate:   time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		Reminder:  &models.Time{Hour: 8, Minute: 0},
		Deadline:  &models.Time{Hour: 23, Minute: 30},
		SubjectID: insertSubject(t, db),
		Completed: true,
		Attachments: []models.Attachment{
			{Type: models.AttachmentFile, Target: "files/template.pdf", Title: "Template"},
		},
		Description: "Model the library domain",
	}
	id, err := repo.Insert(ctx, &hw)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, hw, *got)
}

func TestUpdate_TogglesCompleted(t *testing.T) {
	db := newTestDB(t)
	repo := homework.NewSQLiteRepository(db)
	ctx := context.Background()

	hw := models.Homework{Title: "Essay", DueDate: time.Now().UTC(), SubjectID: insertSubject(t, db)}
	_, err := repo.Insert(ctx, &hw)
	require.NoError(t, err)
	require.False(t, hw.Completed)

	hw.Completed = true
	require.NoError(t, repo.Update(ctx, &hw))

	got, err := repo.GetByID(ctx, hw.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}
