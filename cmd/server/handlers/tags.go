// Package handlers provides the tag vocabulary endpoint.
package handlers

import (
	"net/http"

	"github.com/inkwell-notes/backend/internal/notes"
)

// TagsHandler serves the aggregated tag vocabulary.
type TagsHandler struct {
	svc *notes.Service
}

// NewTagsHandler creates a new TagsHandler.
func NewTagsHandler(svc *notes.Service) *TagsHandler {
	return &TagsHandler{svc: svc}
}

// List handles GET /api/tags
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(UserID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, tags)
}
