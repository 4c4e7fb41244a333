package codec

import (
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

func EncodeLecturer(l models.Lecturer) document.Document {
	d := document.Document{
		"name":          document.String(l.Name),
		"phone_numbers": marshalList(l.PhoneNumbers),
		"emails":        marshalList(l.Emails),
		"addresses":     marshalList(l.Addresses),
		"websites":      marshalList(l.Websites),
		"office_hours":  marshalOfficeHours(l.OfficeHours),
	}
	if l.Photo != "" {
		d["photo"] = document.String(l.Photo)
	}
	return d
}

func DecodeLecturer(key string, d document.Document) (models.Lecturer, error) {
	id, err := parseKey(key)
	if err != nil {
		return models.Lecturer{}, err
	}
	name, err := requireString(d, "name")
	if err != nil {
		return models.Lecturer{}, err
	}
	photo, err := optionalString(d, "photo")
	if err != nil {
		return models.Lecturer{}, err
	}
	phones, err := unmarshalList[string](d, "phone_numbers")
	if err != nil {
		return models.Lecturer{}, err
	}
	emails, err := unmarshalList[string](d, "emails")
	if err != nil {
		return models.Lecturer{}, err
	}
	addresses, err := unmarshalList[string](d, "addresses")
	if err != nil {
		return models.Lecturer{}, err
	}
	websites, err := unmarshalList[string](d, "websites")
	if err != nil {
		return models.Lecturer{}, err
	}
	officeHours, err := unmarshalOfficeHours(d, "office_hours")
	if err != nil {
		return models.Lecturer{}, err
	}

	return models.Lecturer{
		ID:           id,
		Name:         name,
		Photo:        photo,
		PhoneNumbers: phones,
		Emails:       emails,
		Addresses:    addresses,
		Websites:     websites,
		OfficeHours:  officeHours,
	}, nil
}
