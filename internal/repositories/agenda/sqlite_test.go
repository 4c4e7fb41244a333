package agenda_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/repositories/agenda"
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

func TestInsertAndGetByID_RoundTrip(t *testing.T) {
	repo := agenda.NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	entry := models.Agenda{
		Title: "Study group",
		Date:  time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Span: &models.TimeSpan{
			Start: models.Time{Hour: 8, Minute: 0},
			End:   models.Time{Hour: 10, Minute: 0},
		},
		Time:        &models.Time{Hour: 7, Minute: 45},
		Color:       0xFFFFC107,
		Completed:   true,
		Description: "Room changes weekly",
	}
	id, err := repo.Insert(ctx, &entry)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entry, *got)
}

func TestInsert_WithoutSpanOrTime(t *testing.T) {
	repo := agenda.NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	entry := models.Agenda{Title: "Library day", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)}
	id, err := repo.Insert(ctx, &entry)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Span)
	assert.Nil(t, got.Time)
	assert.False(t, got.Completed)
}
