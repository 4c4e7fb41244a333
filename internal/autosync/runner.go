// Package autosync runs the sync engine on a cron schedule in the
// background. Push runs before pull on every tick so local edits reach the
// remote before it is read back.
package autosync

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aivanenka/studyplanner/internal/logging"
	"github.com/aivanenka/studyplanner/internal/sync"
)

// Syncer is the slice of the sync engine the runner needs.
type Syncer interface {
	SyncToLocal(ctx context.Context) <-chan sync.Result[sync.Unit]
	SyncToCloud(ctx context.Context) <-chan sync.Result[sync.Unit]
}

// Runner schedules periodic sync invocations. A Runner with an empty cron
// spec is disabled: Start and Stop are no-ops.
type Runner struct {
	syncer  Syncer
	timeout time.Duration
	log     logging.Logger
	cron    *cron.Cron
}

func NewRunner(syncer Syncer, timeout time.Duration, log logging.Logger) *Runner {
	return &Runner{syncer: syncer, timeout: timeout, log: log}
}

// Start begins ticking on the given cron spec. An empty spec disables
// background sync.
func (r *Runner) Start(spec string) error {
	if spec == "" {
		r.log.Info(context.Background(), "background sync disabled")
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, r.tick); err != nil {
		return fmt.Errorf("invalid autosync spec %q: %w", spec, err)
	}
	c.Start()
	r.cron = c
	r.log.Info(context.Background(), "background sync started", "spec", spec)
	return nil
}

// Stop halts the schedule and waits for a running tick to finish.
func (r *Runner) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

func (r *Runner) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.drain(ctx, "push", r.syncer.SyncToCloud); err != nil {
		// the remote is stale; pulling it back would clobber local edits
		return
	}
	_ = r.drain(ctx, "pull", r.syncer.SyncToLocal)
}

// drain consumes one invocation's result stream and logs the terminal state.
func (r *Runner) drain(ctx context.Context, direction string, op func(context.Context) <-chan sync.Result[sync.Unit]) error {
	var terminal sync.Result[sync.Unit]
	for res := range op(ctx) {
		terminal = res
	}
	if terminal.State == sync.StateError {
		r.log.Error(ctx, "background sync failed", "direction", direction, "error", terminal.Err)
		return terminal.Err
	}
	r.log.Info(ctx, "background sync finished", "direction", direction)
	return nil
}
