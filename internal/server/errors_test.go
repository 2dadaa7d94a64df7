package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "body", Message: "bad"}, http.StatusBadRequest},
		{"unknown field", &editor.FieldError{Entity: "skills", Field: "color", Cause: editor.ErrUnknownField}, http.StatusBadRequest},
		{"invalid level", &editor.FieldError{Entity: "skills", Field: "level", Cause: editor.ErrInvalidLevel}, http.StatusBadRequest},
		{"not an image", &editor.AvatarError{Message: "detected text/plain", Cause: editor.ErrNotAnImage}, http.StatusUnsupportedMediaType},
		{"empty avatar", &editor.AvatarError{Message: "file is empty"}, http.StatusBadRequest},
		{"index", &editor.IndexError{List: editor.ListSkills, Index: 4, Len: 1}, http.StatusNotFound},
		{"unknown list", fmt.Errorf("%w: %q", editor.ErrUnknownList, "hobbies"), http.StatusNotFound},
		{"nothing saved", ErrNothingSaved, http.StatusNotFound},
		{"unusable", ErrUnusableSave, http.StatusUnprocessableEntity},
		{"busy", export.ErrExportInProgress, http.StatusConflict},
		{"unknown template", &export.ExportError{Template: "x", Stage: export.StageRender, Cause: &rendering.TemplateError{Message: "unknown"}}, http.StatusBadRequest},
		{"export failure", &export.ExportError{Template: types.TemplateATS, Stage: export.StagePrint, Cause: errors.New("boom")}, http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
