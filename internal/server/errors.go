// Package server exposes the resume editor over a local HTTP API.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// ErrValidation indicates a malformed request
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNothingSaved indicates a load found no persisted document
var ErrNothingSaved = errors.New("no saved resume")

// ErrUnusableSave indicates a load found a persisted document it could not read
var ErrUnusableSave = errors.New("saved resume could not be read")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		indexErr      *editor.IndexError
		fieldErr      *editor.FieldError
		avatarErr     *editor.AvatarError
		templateErr   *rendering.TemplateError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &fieldErr), errors.As(err, &templateErr):
		return http.StatusBadRequest
	case errors.Is(err, editor.ErrNotAnImage):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &avatarErr):
		return http.StatusBadRequest
	case errors.As(err, &indexErr), errors.Is(err, editor.ErrUnknownList), errors.Is(err, ErrNothingSaved):
		return http.StatusNotFound
	case errors.Is(err, export.ErrExportInProgress):
		return http.StatusConflict
	case errors.Is(err, ErrUnusableSave):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
