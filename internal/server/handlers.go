package server

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxDocumentBytes bounds JSON request bodies; an inlined avatar is the largest field
const maxDocumentBytes = 8 << 20

// FieldRequest sets one named field
type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ValueRequest sets a single value
type ValueRequest struct {
	Value string `json:"value"`
}

// decodeJSON reads a bounded JSON body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// applyEdit runs edit against the store and writes the resulting document
func (s *Server) applyEdit(w http.ResponseWriter, status int, edit editor.Edit) {
	doc, err := s.store.Apply(edit)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, status, doc)
}

// handleGetResume returns the current document
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleReplaceResume swaps in a whole document
func (s *Server) handleReplaceResume(w http.ResponseWriter, r *http.Request) {
	var doc types.ResumeData
	if err := decodeJSON(w, r, &doc); err != nil {
		s.fail(w, err)
		return
	}
	s.store.Replace(doc)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleUpdateSection replaces one top-level section with the request body
func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	section, err := types.ParseSection(r.PathValue("section"))
	if err != nil {
		s.fail(w, &ErrValidation{Field: "section", Message: err.Error()})
		return
	}
	ptr, err := types.SectionValue(section)
	if err != nil {
		s.fail(w, &ErrValidation{Field: "section", Message: err.Error()})
		return
	}
	if err := decodeJSON(w, r, ptr); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.store.Update(section, reflect.ValueOf(ptr).Elem().Interface()); err != nil {
		s.fail(w, &ErrValidation{Field: string(section), Message: err.Error()})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleSetPersonalField edits one personal-info field
func (s *Server) handleSetPersonalField(w http.ResponseWriter, r *http.Request) {
	var req FieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if req.Field == "" {
		s.fail(w, &ErrValidation{Field: "field", Message: "field is required"})
		return
	}
	s.applyEdit(w, http.StatusOK, editor.SetPersonal(req.Field, req.Value))
}

// handleSetSummary replaces the summary text
func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	s.applyEdit(w, http.StatusOK, editor.SetSummary(req.Value))
}

// handleUploadAvatar stores an uploaded image as the avatar data URL.
// A rejected or unreadable upload leaves the document unchanged.
func (s *Server) handleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, editor.MaxAvatarBytes+(1<<20))
	file, _, err := r.FormFile("avatar")
	if err != nil {
		s.fail(w, &ErrValidation{Field: "avatar", Message: "multipart file 'avatar' is required: " + err.Error()})
		return
	}
	defer file.Close()

	dataURL, err := editor.ReadAvatar(file)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.applyEdit(w, http.StatusOK, editor.SetAvatar(dataURL))
}

// handleSave persists the current document immediately
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.store.Save(r.Context())
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleLoad restores the persisted document
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	switch s.store.Load(r.Context()) {
	case store.Restored:
		s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
	case store.NothingSaved:
		s.fail(w, ErrNothingSaved)
	default:
		s.fail(w, ErrUnusableSave)
	}
}

// handleReset clears the document and its persisted copy
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.store.Reset(r.Context())
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}
