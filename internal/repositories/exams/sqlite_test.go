package exams_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/repositories/exams"
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
	repo := exams.NewSQLiteRepository(db)
	ctx := context.Background()

	score := int64(87)
	exam := models.Exam{
		Title:     "Midterm",
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Reminder:  &models.Time{Hour: 1, Minute: 0},
		Deadline:  &models.Time{Hour: 9, Minute: 30},
		SubjectID: insertSubject(t, db),
		Category:  models.ExamOral,
		Score:     &score,
		Attachments: []models.Attachment{
			{Type: models.AttachmentLink, Target: "https://uni.example/syllabus", Title: "Syllabus"},
		},
		Description: "Chapters 1-4",
	}
	id, err := repo.Insert(ctx, &exam)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, exam, *got)
}

func TestInsert_MinimalFields(t *testing.T) {
	db := newTestDB(t)
	repo := exams.NewSQLiteRepository(db)
	ctx := context.Background()

	exam := models.Exam{
		Title:     "Resit",
		Date:      time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		SubjectID: insertSubject(t, db),
		Category:  models.ExamWritten,
	}
	id, err := repo.Insert(ctx, &exam)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Reminder)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.Score)
	assert.Nil(t, got.Attachments)
}

func TestDeleteSubject_CascadesToExams(t *testing.T) {
	db := newTestDB(t)
	repo := exams.NewSQLiteRepository(db)
	ctx := context.Background()

	subjectID := insertSubject(t, db)
	exam := models.Exam{Title: "Midterm", Date: time.Now().UTC(), SubjectID: subjectID, Category: models.ExamWritten}
	_, err := repo.Insert(ctx, &exam)
	require.NoError(t, err)

	require.NoError(t, subjects.NewSQLiteRepository(db).Delete(ctx, subjectID))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
