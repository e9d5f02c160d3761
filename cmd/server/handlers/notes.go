// Package handlers provides the REST API for the Inkwell backend.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-notes/backend/internal/models"
	"github.com/inkwell-notes/backend/internal/notes"
)

// NotesHandler handles note listing and mutations.
type NotesHandler struct {
	svc *notes.Service
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(svc *notes.Service) *NotesHandler {
	return &NotesHandler{svc: svc}
}

// List handles GET /api/notes?archived=&tag=
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := notes.ListOptions{
		TagFilter: r.URL.Query().Get("tag"),
	}

	switch r.URL.Query().Get("archived") {
	case "":
		// no archived filter
	case "true":
		archived := true
		opts.Archived = &archived
	case "false":
		archived := false
		opts.Archived = &archived
	default:
		writeErrorMessage(w, http.StatusBadRequest, "archived must be true or false")
		return
	}

	result, err := h.svc.List(UserID(r), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, noteList(result))
}

// Create handles POST /api/notes
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input notes.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.UserID = UserID(r)

	note, err := h.svc.Create(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// Get handles GET /api/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.Get(UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// Update handles PATCH /api/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.Update(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// ToggleArchive handles POST /api/notes/{id}/archive
func (h *NotesHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.ToggleArchive(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// Delete handles DELETE /api/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// noteList guards against a nil slice marshalling as JSON null.
func noteList(result []*models.Note) []*models.Note {
	if result == nil {
		return []*models.Note{}
	}
	return result
}
