package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aivanenka/studyplanner/internal/models"
)

// promptText prints a prompt and reads a single trimmed line. If EOF occurs
// after some input was read, the partial line is returned.
func (a *App) promptText(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptID reads a positive integer id.
func (a *App) promptID(prompt string) (int64, error) {
	s, err := a.promptText(prompt)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// promptDate reads a "YYYY-MM-DD" date as midnight UTC.
func (a *App) promptDate(prompt string) (time.Time, error) {
	s, err := a.promptText(prompt + " (YYYY-MM-DD)")
	if err != nil {
		return time.Time{}, err
	}
	date, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return date, nil
}

// promptTimeOfDay reads an optional "HH:MM" time; an empty line means absent.
func (a *App) promptTimeOfDay(prompt string) (*models.Time, error) {
	s, err := a.promptText(prompt + " (HH:MM, empty to skip)")
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	t, err := models.ParseTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
