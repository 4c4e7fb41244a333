package cli

import (
	"context"
	"fmt"

	"github.com/aivanenka/studyplanner/internal/sync"
)

func (a *App) runSync(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: sync <push|pull>")
	}

	ctx, cancel := context.WithTimeout(ctx, a.syncTimeout)
	defer cancel()

	var results <-chan sync.Result[sync.Unit]
	switch args[0] {
	case "push":
		results = a.engine.SyncToCloud(ctx)
	case "pull":
		results = a.engine.SyncToLocal(ctx)
	default:
		return fmt.Errorf("unknown direction %q", args[0])
	}

	for res := range results {
		switch res.State {
		case sync.StateLoading:
			fmt.Fprintln(a.out, "Syncing...")
		case sync.StateSuccess:
			fmt.Fprintln(a.out, "Sync finished.")
		case sync.StateError:
			return res.Err
		}
	}
	return nil
}
