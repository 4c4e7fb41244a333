package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aivanenka/studyplanner/internal/autosync"
	"github.com/aivanenka/studyplanner/internal/buildinfo"
	"github.com/aivanenka/studyplanner/internal/cli"
	"github.com/aivanenka/studyplanner/internal/config"
	"github.com/aivanenka/studyplanner/internal/logging"
	"github.com/aivanenka/studyplanner/internal/reminders"
	"github.com/aivanenka/studyplanner/internal/remote"
	"github.com/aivanenka/studyplanner/internal/services"
	"github.com/aivanenka/studyplanner/internal/store"
	"github.com/aivanenka/studyplanner/internal/sync"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(slog.LevelInfo)

	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer st.Close()

	rs, err := newRemote(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	engine := sync.NewEngine(st, rs, logger)

	notifier := reminders.NewNotifier(func(t reminders.Trigger) {
		fmt.Printf("\n[reminder] %s\n", t.Title)
	})
	planner := services.NewPlanner(st, notifier, logger)

	runner := autosync.NewRunner(engine, cfg.SyncTimeout, logger)
	if err := runner.Start(cfg.AutoSyncSpec); err != nil {
		log.Fatalf("%v", err)
	}
	defer runner.Stop()

	fmt.Println("Study planner (type 'help' for commands)")
	cli.NewApp(planner, engine, cfg.SyncTimeout, logger).Run(ctx)
}

// newRemote picks the sync backend: the configured bucket, or an in-memory
// store when no endpoint is set so the planner still works offline.
func newRemote(cfg *config.Config) (remote.Store, error) {
	if cfg.RemoteEndpoint == "" {
		return remote.NewMemoryStore(), nil
	}
	return remote.NewMinIOStore(remote.MinIOConfig{
		Endpoint:  cfg.RemoteEndpoint,
		AccessKey: cfg.RemoteAccessKey,
		SecretKey: cfg.RemoteSecretKey,
		Bucket:    cfg.RemoteBucket,
		UseSSL:    cfg.RemoteUseSSL,
	})
}
