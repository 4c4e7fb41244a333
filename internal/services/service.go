// Package services implements the save paths the UI layer calls: validation,
// local persistence, and reminder registration. Sync is deliberately not in
// here; callers go to the sync engine directly.
package services

import (
	"fmt"
	"strings"

	"github.com/aivanenka/studyplanner/internal/common"
	"github.com/aivanenka/studyplanner/internal/logging"
	"github.com/aivanenka/studyplanner/internal/reminders"
	"github.com/aivanenka/studyplanner/internal/store"
)

// Planner bundles the per-kind save and delete operations over the local
// store and the reminder scheduler.
type Planner struct {
	store     *store.Store
	scheduler reminders.Scheduler
	log       logging.Logger
}

func NewPlanner(st *store.Store, scheduler reminders.Scheduler, log logging.Logger) *Planner {
	return &Planner{store: st, scheduler: scheduler, log: log}
}

// requireText rejects blank user-entered required fields before anything is
// persisted.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be blank: %w", field, common.ErrValidation)
	}
	return nil
}
