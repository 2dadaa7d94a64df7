// Package editor implements the copy-on-write edit operations behind the resume form sections.
package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when an edit names a field the entity does not have
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownList is returned when an edit names a list the document does not have
	ErrUnknownList = errors.New("unknown list")
	// ErrInvalidLevel is returned for skill-level input that is not a number
	ErrInvalidLevel = errors.New("skill level is not a number")
	// ErrNotAnImage is returned when an avatar upload is not an image file
	ErrNotAnImage = errors.New("avatar file is not an image")
)

// IndexError reports a list edit addressed past the end of the list
type IndexError struct {
	List  List
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for %s (length %d)", e.Index, e.List, e.Len)
}

// FieldError reports an edit against a field that does not exist or rejected its value
type FieldError struct {
	Entity string
	Field  string
	Cause  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Entity, e.Field, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// AvatarError represents a failure reading an uploaded avatar file
type AvatarError struct {
	Message string
	Cause   error
}

func (e *AvatarError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("avatar error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("avatar error: %s", e.Message)
}

func (e *AvatarError) Unwrap() error {
	return e.Cause
}
