package config

import (
	"flag"
	"os"
	"time"

	"github.com/aivanenka/studyplanner/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-e string   endpoint of the remote bucket (host:port)
//	-b string   remote bucket name
//	-s string   cron spec for background sync ("" disables)
//	-t int      sync timeout in seconds
//
// Args are filtered through flagx.FilterArgs so the REPL's own arguments
// pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-b", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.RemoteEndpoint, "e", cfg.RemoteEndpoint, "remote bucket endpoint")
	fs.StringVar(&cfg.RemoteBucket, "b", cfg.RemoteBucket, "remote bucket name")
	fs.StringVar(&cfg.AutoSyncSpec, "s", cfg.AutoSyncSpec, "cron spec for background sync")
	syncTimeout := fs.Int("t", int(cfg.SyncTimeout.Seconds()), "sync timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SyncTimeout = time.Duration(*syncTimeout) * time.Second
}
