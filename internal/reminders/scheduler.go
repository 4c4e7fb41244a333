package reminders

import (
	"context"
	"fmt"
)

// Scheduler registers and revokes triggers with the notification backend.
// Scheduling the same id again replaces the earlier registration.
type Scheduler interface {
	Schedule(ctx context.Context, t Trigger) error
	Cancel(ctx context.Context, id int64) error
}

// ScheduleAll registers the triggers one at a time. The first failure is
// wrapped with the trigger's label and returned; triggers registered before
// it stay registered.
func ScheduleAll(ctx context.Context, s Scheduler, triggers []Trigger) error {
	for _, t := range triggers {
		if err := s.Schedule(ctx, t); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", t.Label, err)
		}
	}
	return nil
}

// CancelAll revokes every stable id the entity may have registered.
func CancelAll(ctx context.Context, s Scheduler, entityID int64) error {
	for _, id := range StableIDs(entityID) {
		if err := s.Cancel(ctx, id); err != nil {
			return fmt.Errorf("failed to cancel trigger %d: %w", id, err)
		}
	}
	return nil
}
