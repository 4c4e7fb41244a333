// Package document models the schema-less remote representation of an
// entity: a flat string-keyed map with a closed set of value types. All type
// coercion between entities and documents lives in the codec package, so
// nothing downstream performs untyped field lookups.
package document

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the Value union.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Value is one field of a document: a string, an int64, a bool, or null.
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	b    bool
}

func Null() Value           { return Value{} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func Int(i int64) Value     { return Value{kind: KindInt, num: i} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload; ok is false for other kinds.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the int64 payload; ok is false for other kinds.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == KindInt }

// AsBool returns the bool payload; ok is false for other kinds.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindInt:
		return []byte(strconv.FormatInt(v.num, 10)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.kind)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	s := string(b)
	switch {
	case s == "null":
		*v = Null()
		return nil
	case s == "true" || s == "false":
		*v = Bool(s == "true")
		return nil
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = String(str)
		return nil
	default:
		// Integers only: floats, objects and arrays are outside the closed union.
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("unsupported document value %s", s)
		}
		*v = Int(i)
		return nil
	}
}

// Document is a flat string-keyed map representing one entity in the remote
// store. The remote key of a document is the decimal string of the entity's
// local integer id and is carried outside the map.
type Document map[string]Value
