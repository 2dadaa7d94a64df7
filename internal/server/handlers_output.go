package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// ExportStatusResponse reports whether an export is running
type ExportStatusResponse struct {
	Busy bool `json:"busy"`
}

// templateAndLanguage reads ?template= and ?lang=, falling back to Accept-Language and then the server defaults
func (s *Server) templateAndLanguage(r *http.Request) (types.Template, types.Language, error) {
	q := r.URL.Query()

	tmpl := s.template
	if raw := q.Get("template"); raw != "" {
		parsed, err := types.ParseTemplate(raw)
		if err != nil {
			return "", "", &ErrValidation{Field: "template", Message: err.Error()}
		}
		tmpl = parsed
	}

	lang := s.language
	switch raw := q.Get("lang"); {
	case raw != "":
		parsed, err := i18n.ParseLanguage(raw)
		if err != nil {
			return "", "", &ErrValidation{Field: "lang", Message: err.Error()}
		}
		lang = parsed
	case r.Header.Get("Accept-Language") != "":
		lang = i18n.Match(r.Header.Get("Accept-Language"))
	}
	if lang == "" {
		lang = i18n.Default
	}
	return tmpl, lang, nil
}

// handlePreview renders the current document as a standalone HTML page
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	tmpl, lang, err := s.templateAndLanguage(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	view, err := rendering.Render(s.store.Snapshot(), tmpl, lang)
	if err != nil {
		s.fail(w, err)
		return
	}
	page, err := rendering.Page(view)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// handleExport converts the current document to PDF and returns it as a download.
// A second request while one is running gets 409.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	tmpl, lang, err := s.templateAndLanguage(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	result, err := s.exporter.Export(r.Context(), s.store.Snapshot(), tmpl, lang)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.PDF)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}

// handleExportStatus reports the busy flag
func (s *Server) handleExportStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ExportStatusResponse{Busy: s.exporter.Busy()})
}
