package sync

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/aivanenka/studyplanner/internal/codec"
	"github.com/aivanenka/studyplanner/internal/dbx"
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/logging"
	"github.com/aivanenka/studyplanner/internal/models"
	"github.com/aivanenka/studyplanner/internal/remote"
	"github.com/aivanenka/studyplanner/internal/repositories/theses"
	"github.com/aivanenka/studyplanner/internal/store"
)

// Remote collection names, one per entity kind. Thesis tasks ride inside
// thesis documents and have no collection of their own.
const (
	CollectionLecturers = "lecturers"
	CollectionSubjects  = "subjects"
	CollectionHomework  = "homework"
	CollectionExams     = "exams"
	CollectionAgenda    = "agenda"
	CollectionTheses    = "theses"
)

// Engine orchestrates full pull and push across all entity kinds. Both
// stores are constructor-injected so tests can run against fakes. The engine
// does not serialize concurrent invocations; callers own that policy.
type Engine struct {
	store  *store.Store
	remote remote.Store
	log    logging.Logger
}

func NewEngine(st *store.Store, rs remote.Store, log logging.Logger) *Engine {
	return &Engine{store: st, remote: rs, log: log}
}

// step is one per-kind unit of sync work. The slice returned by steps() is
// the dependency order: parents strictly before dependents, so a pull never
// trips the local store's foreign keys.
type step struct {
	collection string
	pull       func(ctx context.Context) error
	push       func(ctx context.Context) error
}

func (e *Engine) steps() []step {
	return []step{
		{CollectionLecturers, e.pullLecturers, e.pushLecturers},
		{CollectionSubjects, e.pullSubjects, e.pushSubjects},
		{CollectionHomework, e.pullHomework, e.pushHomework},
		{CollectionExams, e.pullExams, e.pushExams},
		{CollectionAgenda, e.pullAgenda, e.pushAgenda},
		{CollectionTheses, e.pullTheses, e.pushTheses},
	}
}

// SyncToLocal replaces local rows with the remote collections, kind by kind
// in dependency order. The returned channel emits Loading, then exactly one
// terminal result, and is closed. The first error aborts the remaining
// kinds; kinds already pulled stay in place.
func (e *Engine) SyncToLocal(ctx context.Context) <-chan Result[Unit] {
	return e.run(ctx, "pull", func(ctx context.Context, s step) error { return s.pull(ctx) })
}

// SyncToCloud pushes every local row into the remote collections, kind by
// kind. Rows are pushed one at a time; the first error aborts the rest.
func (e *Engine) SyncToCloud(ctx context.Context) <-chan Result[Unit] {
	return e.run(ctx, "push", func(ctx context.Context, s step) error { return s.push(ctx) })
}

func (e *Engine) run(ctx context.Context, direction string, op func(context.Context, step) error) <-chan Result[Unit] {
	out := make(chan Result[Unit], 2)
	go func() {
		defer close(out)
		out <- Loading[Unit]()

		log := e.log.With("sync_id", uuid.NewString(), "direction", direction)
		log.Info(ctx, "sync started")

		for _, s := range e.steps() {
			if err := ctx.Err(); err != nil {
				out <- Failure[Unit](err)
				return
			}
			if err := op(ctx, s); err != nil {
				log.Error(ctx, "sync aborted", "collection", s.collection, "error", err)
				out <- Failure[Unit](fmt.Errorf("%s %s: %w", direction, s.collection, err))
				return
			}
			log.Debug(ctx, "collection synced", "collection", s.collection)
		}

		log.Info(ctx, "sync finished")
		out <- Success(Unit{})
	}()
	return out
}

// sortedKeys orders document keys by their numeric id so pull writes are
// deterministic.
func sortedKeys(docs map[string]document.Document) []string {
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseInt(keys[i], 10, 64)
		b, _ := strconv.ParseInt(keys[j], 10, 64)
		return a < b
	})
	return keys
}

func (e *Engine) pullLecturers(ctx context.Context) error {
	docs, err := e.remote.GetAll(ctx, CollectionLecturers)
	if err != nil {
		return err
	}
	keys := sortedKeys(docs)

	// Decode everything first: a malformed document must abort before any
	// local write happens for this kind.
	fetched := make([]models.Lecturer, 0, len(keys))
	ids := make([]int64, 0, len(keys))
	for _, key := range keys {
		l, err := codec.DecodeLecturer(key, docs[key])
		if err != nil {
			return err
		}
		fetched = append(fetched, l)
		ids = append(ids, l.ID)
	}

	// Clear conflicting local rows before the dependent kinds are pulled;
	// the cascade drops stale subjects (and through them exams/homework).
	if err := e.store.Lecturers.DeleteByIDs(ctx, ids); err != nil {
		return err
	}
	for i := range fetched {
		if err := e.store.Lecturers.Upsert(ctx, &fetched[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pullSubjects(ctx context.Context) error {
	docs, err := e.remote.GetAll(ctx, CollectionSubjects)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(docs) {
		s, err := codec.DecodeSubject(key, docs[key])
		if err != nil {
			return err
		}
		if err := e.store.Subjects.Upsert(ctx, &s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pullHomework(ctx context.Context) error {
	docs, err := e.remote.GetAll(ctx, CollectionHomework)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(docs) {
		h, err := codec.DecodeHomework(key, docs[key])
		if err != nil {
			return err
		}
		if err := e.store.Homework.Upsert(ctx, &h); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pullExams(ctx context.Context) error {
	docs, err := e.remote.GetAll(ctx, CollectionExams)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(docs) {
		exam, err := codec.DecodeExam(key, docs[key])
		if err != nil {
			return err
		}
		if err := e.store.Exams.Upsert(ctx, &exam); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pullAgenda(ctx context.Context) error {
	docs, err := e.remote.GetAll(ctx, CollectionAgenda)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(docs) {
		a, err := codec.DecodeAgenda(key, docs[key])
		if err != nil {
			return err
		}
		if err := e.store.Agenda.Upsert(ctx, &a); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pullTheses(ctx context.Context) error {
	docs, err := e.remote.GetAll(ctx, CollectionTheses)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(docs) {
		thesis, tasks, err := codec.DecodeThesis(key, docs[key])
		if err != nil {
			return err
		}
		// the thesis row and its embedded task list replace the local
		// subtree as one unit
		err = dbx.WithTx(ctx, e.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := theses.NewSQLiteRepository(tx)
			if err := repo.Upsert(ctx, &thesis); err != nil {
				return err
			}
			if err := repo.DeleteTasksByThesis(ctx, thesis.ID); err != nil {
				return err
			}
			for i := range tasks {
				if err := repo.UpsertTask(ctx, &tasks[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pushLecturers(ctx context.Context) error {
	rows, err := e.store.Lecturers.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, l := range rows {
		if err := e.remote.Set(ctx, CollectionLecturers, codec.Key(l.ID), codec.EncodeLecturer(l)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pushSubjects(ctx context.Context) error {
	rows, err := e.store.Subjects.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, s := range rows {
		if err := e.remote.Set(ctx, CollectionSubjects, codec.Key(s.ID), codec.EncodeSubject(s)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pushHomework(ctx context.Context) error {
	rows, err := e.store.Homework.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, h := range rows {
		if err := e.remote.Set(ctx, CollectionHomework, codec.Key(h.ID), codec.EncodeHomework(h)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pushExams(ctx context.Context) error {
	rows, err := e.store.Exams.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, exam := range rows {
		if err := e.remote.Set(ctx, CollectionExams, codec.Key(exam.ID), codec.EncodeExam(exam)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pushAgenda(ctx context.Context) error {
	rows, err := e.store.Agenda.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, a := range rows {
		if err := e.remote.Set(ctx, CollectionAgenda, codec.Key(a.ID), codec.EncodeAgenda(a)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) pushTheses(ctx context.Context) error {
	rows, err := e.store.Theses.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, thesis := range rows {
		tasks, err := e.store.Theses.TasksByThesis(ctx, thesis.ID)
		if err != nil {
			return err
		}
		if err := e.remote.Set(ctx, CollectionTheses, codec.Key(thesis.ID), codec.EncodeThesis(thesis, tasks)); err != nil {
			return err
		}
	}
	return nil
}
