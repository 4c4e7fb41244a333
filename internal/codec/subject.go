package codec

import (
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

func EncodeSubject(s models.Subject) document.Document {
	d := document.Document{
		"name":        document.String(s.Name),
		"color":       document.Int(s.Color),
		"room":        document.String(s.Room),
		"description": document.String(s.Description),
		"lecturer_id": document.Int(s.LecturerID),
	}
	if s.SecondaryLecturerID != nil {
		d["secondary_lecturer_id"] = document.Int(*s.SecondaryLecturerID)
	}
	return d
}

func DecodeSubject(key string, d document.Document) (models.Subject, error) {
	id, err := parseKey(key)
	if err != nil {
		return models.Subject{}, err
	}
	name, err := requireString(d, "name")
	if err != nil {
		return models.Subject{}, err
	}
	color, err := optionalInt(d, "color", 0)
	if err != nil {
		return models.Subject{}, err
	}
	room, err := optionalString(d, "room")
	if err != nil {
		return models.Subject{}, err
	}
	description, err := optionalString(d, "description")
	if err != nil {
		return models.Subject{}, err
	}
	lecturerID, err := requireInt(d, "lecturer_id")
	if err != nil {
		return models.Subject{}, err
	}
	secondary, err := optionalIntPtr(d, "secondary_lecturer_id")
	if err != nil {
		return models.Subject{}, err
	}

	return models.Subject{
		ID:                  id,
		Name:                name,
		Color:               color,
		Room:                room,
		Description:         description,
		LecturerID:          lecturerID,
		SecondaryLecturerID: secondary,
	}, nil
}
