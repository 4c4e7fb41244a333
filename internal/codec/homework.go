package codec

import (
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

func EncodeHomework(h models.Homework) document.Document {
	d := document.Document{
		"title":        document.String(h.Title),
		"due_date":     document.Int(h.DueDate.UnixMilli()),
		"subject_id":   document.Int(h.SubjectID),
		"is_completed": document.Bool(h.Completed),
		"attachments":  marshalAttachments(h.Attachments),
		"description":  document.String(h.Description),
	}
	putTimeOfDay(d, "reminder", h.Reminder)
	putTimeOfDay(d, "deadline", h.Deadline)
	if h.Score != nil {
		d["score"] = document.Int(*h.Score)
	}
	return d
}

func DecodeHomework(key string, d document.Document) (models.Homework, error) {
	id, err := parseKey(key)
	if err != nil {
		return models.Homework{}, err
	}
	title, err := requireString(d, "title")
	if err != nil {
		return models.Homework{}, err
	}
	dueDate, err := requireDate(d, "due_date")
	if err != nil {
		return models.Homework{}, err
	}
	subjectID, err := requireInt(d, "subject_id")
	if err != nil {
		return models.Homework{}, err
	}
	completed, err := optionalBool(d, "is_completed")
	if err != nil {
		return models.Homework{}, err
	}
	reminder, err := optionalTimeOfDay(d, "reminder")
	if err != nil {
		return models.Homework{}, err
	}
	deadline, err := optionalTimeOfDay(d, "deadline")
	if err != nil {
		return models.Homework{}, err
	}
	score, err := optionalIntPtr(d, "score")
	if err != nil {
		return models.Homework{}, err
	}
	attachments, err := unmarshalAttachments(d, "attachments")
	if err != nil {
		return models.Homework{}, err
	}
	description, err := optionalString(d, "description")
	if err != nil {
		return models.Homework{}, err
	}

	return models.Homework{
		ID:          id,
		Title:       title,
		DueDate:     dueDate,
		Reminder:    reminder,
		Deadline:    deadline,
		SubjectID:   subjectID,
		Completed:   completed,
		Attachments: attachments,
		Description: description,
		Score:       score,
	}, nil
}
