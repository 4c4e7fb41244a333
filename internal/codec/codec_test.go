package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

func intPtr(i int64) *int64         { return &i }
func timePtr(h, m int) *models.Time { return &models.Time{Hour: h, Minute: m} }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLecturer_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   models.Lecturer
	}{
		{
			name: "minimal",
			in:   models.Lecturer{ID: 1, Name: "Dr. Adams"},
		},
		{
			name: "full",
			in: models.Lecturer{
				ID:           7,
				Name:         "Prof. Bergmann",
				Photo:        "photos/bergmann.jpg",
				PhoneNumbers: []string{"+49 30 1234", "+49 30 5678"},
				Emails:       []string{"bergmann@example.edu"},
				Addresses:    []string{"Main Building, Room 210"},
				Websites:     []string{"https://example.edu/~bergmann"},
				OfficeHours: []models.OfficeHour{
					{Day: time.Monday, Start: models.Time{Hour: 10}, End: models.Time{Hour: 12}},
					{Day: time.Thursday, Start: models.Time{Hour: 14, Minute: 30}, End: models.Time{Hour: 16}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLecturer(Key(tt.in.ID), EncodeLecturer(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestSubject_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   models.Subject
	}{
		{
			name: "required only",
			in:   models.Subject{ID: 3, Name: "Algebra", LecturerID: 1},
		},
		{
			name: "full",
			in: models.Subject{
				ID:                  4,
				Name:                "Databases",
				Color:               0xFF336699,
				Room:                "B-204",
				Description:         "Relational theory and SQL",
				LecturerID:          1,
				SecondaryLecturerID: intPtr(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSubject(Key(tt.in.ID), EncodeSubject(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestExam_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   models.Exam
	}{
		{
			name: "required only",
			in: models.Exam{
				ID: 10, Title: "Midterm", Date: date(2024, time.March, 10),
				SubjectID: 3, Category: models.ExamWritten,
			},
		},
		{
			name: "full",
			in: models.Exam{
				ID:        11,
				Title:     "Final",
				Date:      date(2024, time.July, 2),
				Reminder:  timePtr(8, 30),
				Deadline:  timePtr(23, 59),
				SubjectID: 4,
				Category:  models.ExamOral,
				Score:     intPtr(87),
				Attachments: []models.Attachment{
					{Type: models.AttachmentLink, Target: "https://example.edu/syllabus", Title: "Syllabus"},
					{Type: models.AttachmentFile, Target: "files/notes.pdf", Title: "Notes"},
				},
				Description: "Covers chapters 1-9",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeExam(Key(tt.in.ID), EncodeExam(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestHomework_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   models.Homework
	}{
		{
			name: "required only",
			in:   models.Homework{ID: 20, Title: "Sheet 4", DueDate: date(2024, time.April, 1), SubjectID: 3},
		},
		{
			name: "full",
			in: models.Homework{
				ID:        21,
				Title:     "Project milestone",
				DueDate:   date(2024, time.May, 15),
				Reminder:  timePtr(1, 0),
				Deadline:  timePtr(23, 30),
				SubjectID: 4,
				Completed: true,
				Attachments: []models.Attachment{
					{Type: models.AttachmentImage, Target: "images/diagram.png", Title: "ER diagram"},
				},
				Description: "Submit via upload portal",
				Score:       intPtr(95),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHomework(Key(tt.in.ID), EncodeHomework(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestAgenda_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   models.Agenda
	}{
		{
			name: "required only",
			in:   models.Agenda{ID: 30, Title: "Library day", Date: date(2024, time.March, 20)},
		},
		{
			name: "full",
			in: models.Agenda{
				ID:    31,
				Title: "Study group",
				Date:  date(2024, time.March, 22),
				Span: &models.TimeSpan{
					Start: models.Time{Hour: 8},
					End:   models.Time{Hour: 10},
				},
				Time:        timePtr(7, 45),
				Color:       0xFFAA0000,
				Completed:   true,
				Attachments: []models.Attachment{{Type: models.AttachmentLink, Target: "https://meet.example", Title: "Call"}},
				Description: "Room 12",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAgenda(Key(tt.in.ID), EncodeAgenda(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestThesis_RoundTrip(t *testing.T) {
	in := models.Thesis{
		ID:       40,
		Title:    "Distributed planners",
		Articles: []string{"articles/survey.pdf", "articles/crdt.pdf"},
	}
	tasks := []models.ThesisTask{
		{ID: 1, Name: "Literature review", DueDate: date(2024, time.June, 1), Completed: true, ThesisID: 40},
		{ID: 2, Name: "Prototype", DueDate: date(2024, time.August, 1), ThesisID: 40},
	}

	gotThesis, gotTasks, err := DecodeThesis(Key(in.ID), EncodeThesis(in, tasks))
	require.NoError(t, err)
	assert.Equal(t, in, gotThesis)
	assert.Equal(t, tasks, gotTasks)
}

func TestThesis_RoundTrip_NoTasks(t *testing.T) {
	in := models.Thesis{ID: 41, Title: "Empty thesis"}

	gotThesis, gotTasks, err := DecodeThesis(Key(in.ID), EncodeThesis(in, nil))
	require.NoError(t, err)
	assert.Equal(t, in, gotThesis)
	assert.Nil(t, gotTasks)
}

func TestDecodeExam_PartialData(t *testing.T) {
	base := func() document.Document {
		return document.Document{
			"title":      document.String("Midterm"),
			"date":       document.Int(date(2024, time.March, 10).UnixMilli()),
			"subject_id": document.Int(3),
			"category":   document.String("written"),
		}
	}

	t.Run("missing score decodes with nil score", func(t *testing.T) {
		exam, err := DecodeExam("10", base())
		require.NoError(t, err)
		assert.Nil(t, exam.Score)
		assert.Equal(t, "", exam.Description)
		assert.Nil(t, exam.Attachments)
	})

	t.Run("missing title is a hard failure", func(t *testing.T) {
		d := base()
		delete(d, "title")
		_, err := DecodeExam("10", d)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "title", decodeErr.Field)
	})

	t.Run("wrong-shaped date is a hard failure", func(t *testing.T) {
		d := base()
		d["date"] = document.String("2024-03-10")
		_, err := DecodeExam("10", d)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "date", decodeErr.Field)
	})

	t.Run("unknown category is a hard failure", func(t *testing.T) {
		d := base()
		d["category"] = document.String("takehome")
		_, err := DecodeExam("10", d)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "category", decodeErr.Field)
	})

	t.Run("missing category falls back to written", func(t *testing.T) {
		d := base()
		delete(d, "category")
		exam, err := DecodeExam("10", d)
		require.NoError(t, err)
		assert.Equal(t, models.ExamWritten, exam.Category)
	})

	t.Run("bad document key", func(t *testing.T) {
		_, err := DecodeExam("not-a-number", base())
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "id", decodeErr.Field)
	})
}

func TestDecodeHomework_Defaults(t *testing.T) {
	d := document.Document{
		"title":      document.String("Sheet 1"),
		"due_date":   document.Int(date(2024, time.April, 1).UnixMilli()),
		"subject_id": document.Int(3),
	}

	hw, err := DecodeHomework("20", d)
	require.NoError(t, err)
	assert.False(t, hw.Completed)
	assert.Nil(t, hw.Score)
	assert.Nil(t, hw.Reminder)
	assert.Nil(t, hw.Deadline)
}

func TestDecodeAgenda_HalfSpanFails(t *testing.T) {
	d := document.Document{
		"title":      document.String("Study group"),
		"date":       document.Int(date(2024, time.March, 22).UnixMilli()),
		"start_time": document.String("08:00"),
	}

	_, err := DecodeAgenda("30", d)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "end_time", decodeErr.Field)
}
