package cli

import (
	"context"
	"fmt"
)

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: list <kind>")
	}
	switch args[0] {
	case "lecturers":
		rows, err := a.planner.Lecturers(ctx)
		if err != nil {
			return err
		}
		for _, l := range rows {
			fmt.Fprintf(a.out, "%d\t%s\t%s\n", l.ID, l.Name, joinOrDash(l.Emails))
		}
	case "subjects":
		rows, err := a.planner.Subjects(ctx)
		if err != nil {
			return err
		}
		for _, s := range rows {
			fmt.Fprintf(a.out, "%d\t%s\troom %s\tlecturer %d\n", s.ID, s.Name, s.Room, s.LecturerID)
		}
	case "exams":
		rows, err := a.planner.Exams(ctx)
		if err != nil {
			return err
		}
		for _, e := range rows {
			fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", e.ID, e.Title, e.Date.Format("2006-01-02"), e.Category)
		}
	case "homework":
		rows, err := a.planner.HomeworkItems(ctx)
		if err != nil {
			return err
		}
		for _, h := range rows {
			fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", h.ID, h.Title, h.DueDate.Format("2006-01-02"), doneMark(h.Completed))
		}
	case "agenda":
		rows, err := a.planner.AgendaEntries(ctx)
		if err != nil {
			return err
		}
		for _, entry := range rows {
			fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", entry.ID, entry.Title, entry.Date.Format("2006-01-02"), doneMark(entry.Completed))
		}
	case "theses":
		rows, err := a.planner.Theses(ctx)
		if err != nil {
			return err
		}
		for _, t := range rows {
			tasks, err := a.planner.ThesisTasks(ctx, t.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d\t%s\t%d task(s)\n", t.ID, t.Title, len(tasks))
			for _, task := range tasks {
				fmt.Fprintf(a.out, "  %d\t%s\t%s\t%s\n", task.ID, task.Name, task.DueDate.Format("2006-01-02"), doneMark(task.Completed))
			}
		}
	default:
		return fmt.Errorf("unknown kind %q", args[0])
	}
	return nil
}

func doneMark(completed bool) string {
	if completed {
		return "done"
	}
	return "open"
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}
