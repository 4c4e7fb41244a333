package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivanenka/studyplanner/internal/models"
)

func newInputApp(script string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := (&App{}).withIO(strings.NewReader(script), &out)
	return app, &out
}

func TestPromptText_TrimsLine(t *testing.T) {
	app, out := newInputApp("  hello world  \n")
	got, err := app.promptText("Say something")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestPromptText_PartialLineAtEOF(t *testing.T) {
	app, _ := newInputApp("no newline")
	got, err := app.promptText("Say something")
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestPromptID_RejectsGarbage(t *testing.T) {
	app, _ := newInputApp("abc\n")
	_, err := app.promptID("Id")
	assert.Error(t, err)
}

func TestPromptDate(t *testing.T) {
	app, _ := newInputApp("2024-03-10\n")
	got, err := app.promptDate("Date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestPromptTimeOfDay(t *testing.T) {
	app, _ := newInputApp("08:30\n")
	got, err := app.promptTimeOfDay("Start")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.Time{Hour: 8, Minute: 30}, *got)
}

func TestPromptTimeOfDay_EmptyMeansAbsent(t *testing.T) {
	app, _ := newInputApp("\n")
	got, err := app.promptTimeOfDay("Start")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPromptTimeOfDay_OutOfRange(t *testing.T) {
	app, _ := newInputApp("25:00\n")
	_, err := app.promptTimeOfDay("Start")
	assert.Error(t, err)
}
