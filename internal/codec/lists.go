package codec

import (
	"encoding/json"
	"time"

	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

// List fields are opaque to the remote store: each one is serialized to a
// single JSON string and parsed back losslessly. Empty lists stay nil on
// both sides of the round-trip.

func marshalList[T any](list []T) document.Value {
	if len(list) == 0 {
		return document.String("[]")
	}
	b, err := json.Marshal(list)
	if err != nil {
		// DTO slices of plain strings and structs cannot fail to marshal.
		panic(err)
	}
	return document.String(string(b))
}

func unmarshalList[T any](d document.Document, field string) ([]T, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return nil, nil
	}
	s, ok := v.AsString()
	if !ok {
		return nil, decodeErr(field, "expected serialized list, got "+v.Kind().String())
	}
	var out []T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, decodeErr(field, "malformed list: "+err.Error())
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

type attachmentDTO struct {
	Type   string `json:"type"`
	Target string `json:"target"`
	Title  string `json:"title"`
}

func marshalAttachments(list []models.Attachment) document.Value {
	dtos := make([]attachmentDTO, 0, len(list))
	for _, a := range list {
		dtos = append(dtos, attachmentDTO{Type: string(a.Type), Target: a.Target, Title: a.Title})
	}
	return marshalList(dtos)
}

func unmarshalAttachments(d document.Document, field string) ([]models.Attachment, error) {
	dtos, err := unmarshalList[attachmentDTO](d, field)
	if err != nil || dtos == nil {
		return nil, err
	}
	out := make([]models.Attachment, 0, len(dtos))
	for _, dto := range dtos {
		switch models.AttachmentType(dto.Type) {
		case models.AttachmentLink, models.AttachmentImage, models.AttachmentFile:
		default:
			return nil, decodeErr(field, "unknown attachment type "+dto.Type)
		}
		out = append(out, models.Attachment{
			Type:   models.AttachmentType(dto.Type),
			Target: dto.Target,
			Title:  dto.Title,
		})
	}
	return out, nil
}

type officeHourDTO struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func marshalOfficeHours(list []models.OfficeHour) document.Value {
	dtos := make([]officeHourDTO, 0, len(list))
	for _, oh := range list {
		dtos = append(dtos, officeHourDTO{Day: int(oh.Day), Start: oh.Start.String(), End: oh.End.String()})
	}
	return marshalList(dtos)
}

func unmarshalOfficeHours(d document.Document, field string) ([]models.OfficeHour, error) {
	dtos, err := unmarshalList[officeHourDTO](d, field)
	if err != nil || dtos == nil {
		return nil, err
	}
	out := make([]models.OfficeHour, 0, len(dtos))
	for _, dto := range dtos {
		start, err := models.ParseTime(dto.Start)
		if err != nil {
			return nil, decodeErr(field, err.Error())
		}
		end, err := models.ParseTime(dto.End)
		if err != nil {
			return nil, decodeErr(field, err.Error())
		}
		if dto.Day < 0 || dto.Day > 6 {
			return nil, decodeErr(field, "invalid weekday")
		}
		out = append(out, models.OfficeHour{Day: time.Weekday(dto.Day), Start: start, End: end})
	}
	return out, nil
}

type thesisTaskDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	DueDate   int64  `json:"due_date"`
	Completed bool   `json:"is_completed"`
}

func marshalThesisTasks(list []models.ThesisTask) document.Value {
	dtos := make([]thesisTaskDTO, 0, len(list))
	for _, task := range list {
		dtos = append(dtos, thesisTaskDTO{
			ID:        task.ID,
			Name:      task.Name,
			DueDate:   task.DueDate.UnixMilli(),
			Completed: task.Completed,
		})
	}
	return marshalList(dtos)
}

func unmarshalThesisTasks(d document.Document, field string, thesisID int64) ([]models.ThesisTask, error) {
	dtos, err := unmarshalList[thesisTaskDTO](d, field)
	if err != nil || dtos == nil {
		return nil, err
	}
	out := make([]models.ThesisTask, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, models.ThesisTask{
			ID:        dto.ID,
			Name:      dto.Name,
			DueDate:   time.UnixMilli(dto.DueDate).UTC(),
			Completed: dto.Completed,
			ThesisID:  thesisID,
		})
	}
	return out, nil
}
