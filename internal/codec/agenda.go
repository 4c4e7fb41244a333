package codec

import (
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

func EncodeAgenda(a models.Agenda) document.Document {
	d := document.Document{
		"title":        document.String(a.Title),
		"date":         document.Int(a.Date.UnixMilli()),
		"color":        document.Int(a.Color),
		"is_completed": document.Bool(a.Completed),
		"attachments":  marshalAttachments(a.Attachments),
		"description":  document.String(a.Description),
	}
	if a.Span != nil {
		d["start_time"] = document.String(a.Span.Start.String())
		d["end_time"] = document.String(a.Span.End.String())
	}
	putTimeOfDay(d, "time", a.Time)
	return d
}

func DecodeAgenda(key string, d document.Document) (models.Agenda, error) {
	id, err := parseKey(key)
	if err != nil {
		return models.Agenda{}, err
	}
	title, err := requireString(d, "title")
	if err != nil {
		return models.Agenda{}, err
	}
	date, err := requireDate(d, "date")
	if err != nil {
		return models.Agenda{}, err
	}
	start, err := optionalTimeOfDay(d, "start_time")
	if err != nil {
		return models.Agenda{}, err
	}
	end, err := optionalTimeOfDay(d, "end_time")
	if err != nil {
		return models.Agenda{}, err
	}
	// the span is written as a pair; half a span is a malformed document
	if (start == nil) != (end == nil) {
		missing := "start_time"
		if end == nil {
			missing = "end_time"
		}
		return models.Agenda{}, decodeErr(missing, "missing half of duration span")
	}
	var span *models.TimeSpan
	if start != nil {
		span = &models.TimeSpan{Start: *start, End: *end}
	}
	at, err := optionalTimeOfDay(d, "time")
	if err != nil {
		return models.Agenda{}, err
	}
	color, err := optionalInt(d, "color", 0)
	if err != nil {
		return models.Agenda{}, err
	}
	completed, err := optionalBool(d, "is_completed")
	if err != nil {
		return models.Agenda{}, err
	}
	attachments, err := unmarshalAttachments(d, "attachments")
	if err != nil {
		return models.Agenda{}, err
	}
	description, err := optionalString(d, "description")
	if err != nil {
		return models.Agenda{}, err
	}

	return models.Agenda{
		ID:          id,
		Title:       title,
		Date:        date,
		Span:        span,
		Time:        at,
		Color:       color,
		Completed:   completed,
		Attachments: attachments,
		Description: description,
	}, nil
}
