package dbx

import "encoding/json"

// JSONText serializes a list column. Empty and nil lists both become "[]" so
// the stored form is stable.
func JSONText[T any](list []T) string {
	if len(list) == 0 {
		return "[]"
	}
	b, err := json.Marshal(list)
	if err != nil {
		// slices of plain structs and strings cannot fail to marshal
		panic(err)
	}
	return string(b)
}

// ScanJSONText parses a list column written by JSONText. Empty lists come
// back as nil.
func ScanJSONText[T any](s string) ([]T, error) {
	var out []T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
