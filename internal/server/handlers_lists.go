package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/editor"
)

// pathList parses the {list} path segment
func pathList(r *http.Request) (editor.List, error) {
	return editor.ParseList(r.PathValue("list"))
}

// pathIndex parses the {index} path segment
func pathIndex(r *http.Request) (int, error) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrValidation{Field: "index", Message: "must be an integer, got " + strconv.Quote(raw)}
	}
	return index, nil
}

// handleAddItem appends a new item with a fresh id to a list
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	list, err := pathList(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.applyEdit(w, http.StatusCreated, editor.AddItem(list))
}

// handleSetItemField edits one field of a list item
func (s *Server) handleSetItemField(w http.ResponseWriter, r *http.Request) {
	list, err := pathList(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var req FieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	s.applyEdit(w, http.StatusOK, editor.SetItemField(list, index, req.Field, req.Value))
}

// handleRemoveItem deletes a list item; the others keep their order and ids
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	list, err := pathList(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.applyEdit(w, http.StatusOK, editor.RemoveItem(list, index))
}
