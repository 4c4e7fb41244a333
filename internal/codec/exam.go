package codec

import (
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

func EncodeExam(e models.Exam) document.Document {
	d := document.Document{
		"title":       document.String(e.Title),
		"date":        document.Int(e.Date.UnixMilli()),
		"subject_id":  document.Int(e.SubjectID),
		"category":    document.String(string(e.Category)),
		"attachments": marshalAttachments(e.Attachments),
		"description": document.String(e.Description),
	}
	putTimeOfDay(d, "reminder", e.Reminder)
	putTimeOfDay(d, "deadline", e.Deadline)
	if e.Score != nil {
		d["score"] = document.Int(*e.Score)
	}
	return d
}

func DecodeExam(key string, d document.Document) (models.Exam, error) {
	id, err := parseKey(key)
	if err != nil {
		return models.Exam{}, err
	}
	title, err := requireString(d, "title")
	if err != nil {
		return models.Exam{}, err
	}
	date, err := requireDate(d, "date")
	if err != nil {
		return models.Exam{}, err
	}
	subjectID, err := requireInt(d, "subject_id")
	if err != nil {
		return models.Exam{}, err
	}
	category, err := decodeCategory(d, "category")
	if err != nil {
		return models.Exam{}, err
	}
	reminder, err := optionalTimeOfDay(d, "reminder")
	if err != nil {
		return models.Exam{}, err
	}
	deadline, err := optionalTimeOfDay(d, "deadline")
	if err != nil {
		return models.Exam{}, err
	}
	score, err := optionalIntPtr(d, "score")
	if err != nil {
		return models.Exam{}, err
	}
	attachments, err := unmarshalAttachments(d, "attachments")
	if err != nil {
		return models.Exam{}, err
	}
	description, err := optionalString(d, "description")
	if err != nil {
		return models.Exam{}, err
	}

	return models.Exam{
		ID:          id,
		Title:       title,
		Date:        date,
		Reminder:    reminder,
		Deadline:    deadline,
		SubjectID:   subjectID,
		Category:    category,
		Score:       score,
		Attachments: attachments,
		Description: description,
	}, nil
}

// decodeCategory falls back to "written" when the field is absent; an
// unknown name is a hard failure.
func decodeCategory(d document.Document, field string) (models.ExamCategory, error) {
	s, err := optionalString(d, field)
	if err != nil {
		return "", err
	}
	if s == "" {
		return models.ExamWritten, nil
	}
	switch c := models.ExamCategory(s); c {
	case models.ExamWritten, models.ExamOral, models.ExamPractical:
		return c, nil
	default:
		return "", decodeErr(field, "unknown exam category "+s)
	}
}
