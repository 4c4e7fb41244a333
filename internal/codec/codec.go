// Package codec holds the pure, per-kind bidirectional mapping between typed
// entities and flat remote documents. Encoding rules: dates become epoch
// milliseconds (UTC), times-of-day become "HH:MM" strings, enums become their
// canonical name, colors stay packed integers, and list fields are serialized
// to a single JSON string. Optional fields that are absent are omitted.
//
// For every entity kind and every legally constructed instance x,
// Decode(Encode(x)) == x. The codec never touches a store and cannot fail
// due to I/O.
package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

// DecodeError reports a required document field that is absent or has the
// wrong shape. It aborts the surrounding pull.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode field %q: %s", e.Field, e.Reason)
}

func decodeErr(field, reason string) error {
	return &DecodeError{Field: field, Reason: reason}
}

// Key returns the remote document key for a local id: its decimal string.
func Key(id int64) string { return strconv.FormatInt(id, 10) }

func parseKey(key string) (int64, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, decodeErr("id", fmt.Sprintf("invalid document key %q", key))
	}
	return id, nil
}

func requireString(d document.Document, field string) (string, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return "", decodeErr(field, "missing")
	}
	s, ok := v.AsString()
	if !ok {
		return "", decodeErr(field, "expected string, got "+v.Kind().String())
	}
	return s, nil
}

func requireInt(d document.Document, field string) (int64, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return 0, decodeErr(field, "missing")
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, decodeErr(field, "expected int, got "+v.Kind().String())
	}
	return i, nil
}

// requireDate decodes an epoch-milliseconds field into a UTC time.Time.
func requireDate(d document.Document, field string) (time.Time, error) {
	ms, err := requireInt(d, field)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

func optionalString(d document.Document, field string) (string, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return "", nil
	}
	s, ok := v.AsString()
	if !ok {
		return "", decodeErr(field, "expected string, got "+v.Kind().String())
	}
	return s, nil
}

func optionalInt(d document.Document, field string, def int64) (int64, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return def, nil
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, decodeErr(field, "expected int, got "+v.Kind().String())
	}
	return i, nil
}

func optionalIntPtr(d document.Document, field string) (*int64, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return nil, nil
	}
	i, ok := v.AsInt()
	if !ok {
		return nil, decodeErr(field, "expected int, got "+v.Kind().String())
	}
	return &i, nil
}

func optionalBool(d document.Document, field string) (bool, error) {
	v, ok := d[field]
	if !ok || v.IsNull() {
		return false, nil
	}
	b, ok := v.AsBool()
	if !ok {
		return false, decodeErr(field, "expected bool, got "+v.Kind().String())
	}
	return b, nil
}

// optionalTimeOfDay decodes an "HH:MM" string field, nil when absent.
func optionalTimeOfDay(d document.Document, field string) (*models.Time, error) {
	s, err := optionalString(d, field)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	t, err := models.ParseTime(s)
	if err != nil {
		return nil, decodeErr(field, err.Error())
	}
	return &t, nil
}

func putTimeOfDay(d document.Document, field string, t *models.Time) {
	if t != nil {
		d[field] = document.String(t.String())
	}
}
