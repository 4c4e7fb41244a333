// Package cli implements the interactive planner REPL. All behavior lives in
// the services and sync packages; this layer only parses commands and prints
// results.
package cli

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/aivanenka/studyplanner/internal/logging"
	"github.com/aivanenka/studyplanner/internal/services"
	"github.com/aivanenka/studyplanner/internal/sync"
)

// App wires user input to the planner services and the sync engine.
type App struct {
	planner     *services.Planner
	engine      *sync.Engine
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	syncTimeout time.Duration
}

func NewApp(planner *services.Planner, engine *sync.Engine, syncTimeout time.Duration, log logging.Logger) *App {
	return &App{
		planner:     planner,
		engine:      engine,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		syncTimeout: syncTimeout,
	}
}

// withIO redirects input and output, for tests.
func (a *App) withIO(in io.Reader, out io.Writer) *App {
	a.reader = bufio.NewReader(in)
	a.out = out
	return a
}
