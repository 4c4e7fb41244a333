package sync

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivanenka/studyplanner/internal/codec"
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/logging"
	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/remote"
	"github.com/aivanenka/studyplanner/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(context.Background(), db))
	t.Cleanup(func() { _ = db.Close() })
	return store.New(db)
}

func newTestEngine(t *testing.T, rs remote.Store) (*Engine, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	return NewEngine(st, rs, logging.NewTextLogger(slog.LevelError)), st
}

// drain collects the whole result stream after the channel closes.
func drain(ch <-chan Result[Unit]) []Result[Unit] {
	var results []Result[Unit]
	for r := range ch {
		results = append(results, r)
	}
	return results
}

func requireSuccess(t *testing.T, ch <-chan Result[Unit]) {
	t.Helper()
	results := drain(ch)
	require.Len(t, results, 2)
	assert.Equal(t, StateLoading, results[0].State)
	require.Equal(t, StateSuccess, results[1].State, "terminal result: %v", results[1].Err)
}

func requireFailure(t *testing.T, ch <-chan Result[Unit]) error {
	t.Helper()
	results := drain(ch)
	require.Len(t, results, 2)
	assert.Equal(t, StateLoading, results[0].State)
	require.Equal(t, StateError, results[1].State)
	require.Error(t, results[1].Err)
	return results[1].Err
}

func seedRemote(t *testing.T, rs remote.Store) {
	t.Helper()
	ctx := context.Background()

	lecturer := models.Lecturer{ID: 1, Name: "Dr. Weber", Emails: []string{"weber@uni.example"}}
	subject := models.Subject{ID: 10, Name: "Databases", Color: 0xFF2196F3, Room: "B1.02", LecturerID: 1}
	hw := models.Homework{ID: 100, Title: "ER diagram", DueDate: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), SubjectID: 10}
	exam := models.Exam{ID: 200, Title: "Midterm", Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), SubjectID: 10, Category: models.ExamWritten}
	agenda := models.Agenda{ID: 300, Title: "Library day", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)}
	thesis := models.Thesis{ID: 400, Title: "Query optimizers"}
	tasks := []models.ThesisTask{
		{ID: 1, Name: "Literature review", DueDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ThesisID: 400},
		{ID: 2, Name: "Benchmarks", DueDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Completed: true, ThesisID: 400},
	}

	require.NoError(t, rs.Set(ctx, CollectionLecturers, codec.Key(1), codec.EncodeLecturer(lecturer)))
	require.NoError(t, rs.Set(ctx, CollectionSubjects, codec.Key(10), codec.EncodeSubject(subject)))
	require.NoError(t, rs.Set(ctx, CollectionHomework, codec.Key(100), codec.EncodeHomework(hw)))
	require.NoError(t, rs.Set(ctx, CollectionExams, codec.Key(200), codec.EncodeExam(exam)))
	require.NoError(t, rs.Set(ctx, CollectionAgenda, codec.Key(300), codec.EncodeAgenda(agenda)))
	require.NoError(t, rs.Set(ctx, CollectionTheses, codec.Key(400), codec.EncodeThesis(thesis, tasks)))
}

func TestSyncToLocal_PullsAllKinds(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	seedRemote(t, rs)

	engine, st := newTestEngine(t, rs)
	requireSuccess(t, engine.SyncToLocal(ctx))

	lecturer, err := st.Lecturers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Weber", lecturer.Name)
	assert.Equal(t, []string{"weber@uni.example"}, lecturer.Emails)

	subject, err := st.Subjects.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Databases", subject.Name)
	assert.Equal(t, int64(1), subject.LecturerID)

	hw, err := st.Homework.GetByID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "ER diagram", hw.Title)
	assert.False(t, hw.Completed)

	exam, err := st.Exams.GetByID(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, models.ExamWritten, exam.Category)

	agenda, err := st.Agenda.GetByID(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, "Library day", agenda.Title)

	thesis, err := st.Theses.GetByID(ctx, 400)
	require.NoError(t, err)
	assert.Equal(t, "Query optimizers", thesis.Title)
	tasks, err := st.Theses.TasksByThesis(ctx, 400)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Literature review", tasks[0].Name)
	assert.True(t, tasks[1].Completed)
}

func TestSyncToLocal_Idempotent(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	seedRemote(t, rs)

	engine, st := newTestEngine(t, rs)
	requireSuccess(t, engine.SyncToLocal(ctx))
	requireSuccess(t, engine.SyncToLocal(ctx))

	subjects, err := st.Subjects.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, subjects, 1)
	tasks, err := st.Theses.TasksByThesis(ctx, 400)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestSyncToLocal_ReplacesStaleLecturerSubtree(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Set(ctx, CollectionLecturers, codec.Key(1),
		codec.EncodeLecturer(models.Lecturer{ID: 1, Name: "Dr. Weber (renamed)"})))

	engine, st := newTestEngine(t, rs)

	// local subtree not present remotely
	stale := models.Lecturer{ID: 1, Name: "Dr. Weber"}
	require.NoError(t, st.Lecturers.Upsert(ctx, &stale))
	staleSubject := models.Subject{ID: 10, Name: "Databases", LecturerID: 1}
	require.NoError(t, st.Subjects.Upsert(ctx, &staleSubject))

	requireSuccess(t, engine.SyncToLocal(ctx))

	lecturer, err := st.Lecturers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Weber (renamed)", lecturer.Name)

	// delete-then-upsert dropped the lecturer's old subjects via the cascade
	subjects, err := st.Subjects.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, subjects)
}

func TestSyncToLocal_DecodeErrorAborts(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Set(ctx, CollectionLecturers, codec.Key(1),
		codec.EncodeLecturer(models.Lecturer{ID: 1, Name: "Dr. Weber"})))
	// subject document missing its name field
	require.NoError(t, rs.Set(ctx, CollectionSubjects, codec.Key(10), document.Document{
		"color":       document.Int(0),
		"lecturer_id": document.Int(1),
	}))

	engine, st := newTestEngine(t, rs)
	err := requireFailure(t, engine.SyncToLocal(ctx))
	var decodeErr *codec.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "name", decodeErr.Field)

	// the earlier kind was already applied; no rollback
	_, err = st.Lecturers.GetByID(ctx, 1)
	assert.NoError(t, err)
	subjects, err := st.Subjects.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, subjects)
}

func TestSyncToCloud_PushesAllRows(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	engine, st := newTestEngine(t, rs)

	lecturer := models.Lecturer{Name: "Dr. Weber"}
	_, err := st.Lecturers.Insert(ctx, &lecturer)
	require.NoError(t, err)
	subject := models.Subject{Name: "Databases", LecturerID: lecturer.ID}
	_, err = st.Subjects.Insert(ctx, &subject)
	require.NoError(t, err)
	thesis := models.Thesis{Title: "Query optimizers"}
	_, err = st.Theses.Insert(ctx, &thesis)
	require.NoError(t, err)
	task := models.ThesisTask{Name: "Outline", DueDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ThesisID: thesis.ID}
	_, err = st.Theses.InsertTask(ctx, &task)
	require.NoError(t, err)

	requireSuccess(t, engine.SyncToCloud(ctx))

	doc, err := rs.Get(ctx, CollectionLecturers, codec.Key(lecturer.ID))
	require.NoError(t, err)
	got, err := codec.DecodeLecturer(codec.Key(lecturer.ID), doc)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Weber", got.Name)

	doc, err = rs.Get(ctx, CollectionTheses, codec.Key(thesis.ID))
	require.NoError(t, err)
	_, tasks, err := codec.DecodeThesis(codec.Key(thesis.ID), doc)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Outline", tasks[0].Name)
}

// failingRemote fails every write to one collection.
type failingRemote struct {
	remote.Store
	failCollection string
	err            error
}

func (f *failingRemote) Set(ctx context.Context, collection, key string, doc document.Document) error {
	if collection == f.failCollection {
		return f.err
	}
	return f.Store.Set(ctx, collection, key, doc)
}

func TestSyncToCloud_RemoteErrorAborts(t *testing.T) {
	ctx := context.Background()
	mem := remote.NewMemoryStore()
	boom := errors.New("bucket unavailable")
	rs := &failingRemote{Store: mem, failCollection: CollectionSubjects, err: boom}
	engine, st := newTestEngine(t, rs)

	lecturer := models.Lecturer{Name: "Dr. Weber"}
	_, err := st.Lecturers.Insert(ctx, &lecturer)
	require.NoError(t, err)
	subject := models.Subject{Name: "Databases", LecturerID: lecturer.ID}
	_, err = st.Subjects.Insert(ctx, &subject)
	require.NoError(t, err)

	err = requireFailure(t, engine.SyncToCloud(ctx))
	assert.ErrorIs(t, err, boom)

	// lecturers were pushed before the failing kind
	docs, err := mem.GetAll(ctx, CollectionLecturers)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestSyncToLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine, _ := newTestEngine(t, remote.NewMemoryStore())
	err := requireFailure(t, engine.SyncToLocal(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
