package cli

import (
	"context"
	"fmt"

	"github.com/aivanenka/studyplanner/internal/models"
)

func (a *App) add(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: add <kind>")
	}
	switch args[0] {
	case "lecturer":
		return a.addLecturer(ctx)
	case "subject":
		return a.addSubject(ctx)
	case "exam":
		return a.addExam(ctx)
	case "homework":
		return a.addHomework(ctx)
	case "agenda":
		return a.addAgenda(ctx)
	case "thesis":
		return a.addThesis(ctx)
	case "task":
		return a.addThesisTask(ctx)
	default:
		return fmt.Errorf("unknown kind %q", args[0])
	}
}

func (a *App) addLecturer(ctx context.Context) error {
	name, err := a.promptText("Lecturer name")
	if err != nil {
		return err
	}
	email, err := a.promptText("Email (empty to skip)")
	if err != nil {
		return err
	}
	lecturer := models.Lecturer{Name: name}
	if email != "" {
		lecturer.Emails = []string{email}
	}
	if err := a.planner.SaveLecturer(ctx, &lecturer); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved lecturer %d\n", lecturer.ID)
	return nil
}

func (a *App) addSubject(ctx context.Context) error {
	name, err := a.promptText("Subject name")
	if err != nil {
		return err
	}
	lecturerID, err := a.promptID("Lecturer id")
	if err != nil {
		return err
	}
	room, err := a.promptText("Room (empty to skip)")
	if err != nil {
		return err
	}
	subject := models.Subject{Name: name, LecturerID: lecturerID, Room: room}
	if err := a.planner.SaveSubject(ctx, &subject); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved subject %d\n", subject.ID)
	return nil
}

func (a *App) addExam(ctx context.Context) error {
	title, err := a.promptText("Exam title")
	if err != nil {
		return err
	}
	subjectID, err := a.promptID("Subject id")
	if err != nil {
		return err
	}
	date, err := a.promptDate("Exam date")
	if err != nil {
		return err
	}
	reminder, err := a.promptTimeOfDay("Reminder")
	if err != nil {
		return err
	}
	deadline, err := a.promptTimeOfDay("Deadline")
	if err != nil {
		return err
	}
	exam := models.Exam{Title: title, SubjectID: subjectID, Date: date, Reminder: reminder, Deadline: deadline}
	if err := a.planner.SaveExam(ctx, &exam); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved exam %d\n", exam.ID)
	return nil
}

func (a *App) addHomework(ctx context.Context) error {
	title, err := a.promptText("Homework title")
	if err != nil {
		return err
	}
	subjectID, err := a.promptID("Subject id")
	if err != nil {
		return err
	}
	dueDate, err := a.promptDate("Due date")
	if err != nil {
		return err
	}
	deadline, err := a.promptTimeOfDay("Deadline")
	if err != nil {
		return err
	}
	hw := models.Homework{Title: title, SubjectID: subjectID, DueDate: dueDate, Deadline: deadline}
	if err := a.planner.SaveHomework(ctx, &hw); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved homework %d\n", hw.ID)
	return nil
}

func (a *App) addAgenda(ctx context.Context) error {
	title, err := a.promptText("Agenda title")
	if err != nil {
		return err
	}
	date, err := a.promptDate("Date")
	if err != nil {
		return err
	}
	at, err := a.promptTimeOfDay("Reminder time")
	if err != nil {
		return err
	}
	start, err := a.promptTimeOfDay("Span start")
	if err != nil {
		return err
	}
	entry := models.Agenda{Title: title, Date: date, Time: at}
	if start != nil {
		end, err := a.promptTimeOfDay("Span end")
		if err != nil {
			return err
		}
		if end == nil {
			return fmt.Errorf("span end is required when a start is given")
		}
		entry.Span = &models.TimeSpan{Start: *start, End: *end}
	}
	if err := a.planner.SaveAgenda(ctx, &entry); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved agenda entry %d\n", entry.ID)
	return nil
}

func (a *App) addThesis(ctx context.Context) error {
	title, err := a.promptText("Thesis title")
	if err != nil {
		return err
	}
	thesis := models.Thesis{Title: title}
	if err := a.planner.SaveThesis(ctx, &thesis); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved thesis %d\n", thesis.ID)
	return nil
}

func (a *App) addThesisTask(ctx context.Context) error {
	thesisID, err := a.promptID("Thesis id")
	if err != nil {
		return err
	}
	name, err := a.promptText("Task name")
	if err != nil {
		return err
	}
	dueDate, err := a.promptDate("Due date")
	if err != nil {
		return err
	}
	task := models.ThesisTask{ThesisID: thesisID, Name: name, DueDate: dueDate}
	if err := a.planner.SaveThesisTask(ctx, &task); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved task %d\n", task.ID)
	return nil
}
