package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const helpText = `Available commands:
  list <lecturers|subjects|exams|homework|agenda|theses>
  add <lecturer|subject|exam|homework|agenda|thesis|task>
  done <homework|agenda|task> <id> [taskId]
  delete <lecturer|subject|exam|homework|agenda|thesis|task> <id>
  sync <push|pull>
  help
  exit`

// Run starts the read-eval-print loop. It returns on EOF or "exit". Command
// errors are printed, never fatal.
//
// The loop reads through the same buffered reader the interactive prompts
// use, so multi-line commands like "add exam" never lose buffered input.
func (a *App) Run(ctx context.Context) {
	for {
		fmt.Fprint(a.out, "planner> ")
		line, readErr := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}

		var err error
		switch parts[0] {
		case "help":
			fmt.Fprintln(a.out, helpText)
		case "list":
			err = a.list(ctx, parts[1:])
		case "add":
			err = a.add(ctx, parts[1:])
		case "done":
			err = a.done(ctx, parts[1:])
		case "delete":
			err = a.delete(ctx, parts[1:])
		case "sync":
			err = a.runSync(ctx, parts[1:])
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
		if readErr != nil {
			return
		}
	}
}

func argID(args []string, pos int) (int64, error) {
	if len(args) <= pos {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(args[pos], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[pos])
	}
	return id, nil
}

func (a *App) done(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: done <homework|agenda|task> <id> [taskId]")
	}
	id, err := argID(args, 1)
	if err != nil {
		return err
	}
	switch args[0] {
	case "homework":
		return a.planner.CompleteHomework(ctx, id)
	case "agenda":
		return a.planner.CompleteAgenda(ctx, id)
	case "task":
		taskID, err := argID(args, 2)
		if err != nil {
			return fmt.Errorf("usage: done task <thesisId> <taskId>")
		}
		return a.planner.CompleteThesisTask(ctx, id, taskID)
	default:
		return fmt.Errorf("cannot mark %q done", args[0])
	}
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: delete <kind> <id>")
	}
	id, err := argID(args, 1)
	if err != nil {
		return err
	}
	switch args[0] {
	case "lecturer":
		return a.planner.DeleteLecturer(ctx, id)
	case "subject":
		return a.planner.DeleteSubject(ctx, id)
	case "exam":
		return a.planner.DeleteExam(ctx, id)
	case "homework":
		return a.planner.DeleteHomework(ctx, id)
	case "agenda":
		return a.planner.DeleteAgenda(ctx, id)
	case "thesis":
		return a.planner.DeleteThesis(ctx, id)
	case "task":
		return a.planner.DeleteThesisTask(ctx, id)
	default:
		return fmt.Errorf("unknown kind %q", args[0])
	}
}
