// Package common defines shared constants and sentinel errors used across
// planner components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Save-path validation errors (a required user-entered field is blank).
	ErrValidation = errors.New("validation error")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
