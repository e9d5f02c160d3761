// Package handlers provides the note search endpoint.
package handlers

import (
	"net/http"

	"github.com/inkwell-notes/backend/internal/notes"
)

// SearchHandler handles hybrid note search.
type SearchHandler struct {
	svc *notes.Service
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc *notes.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/notes/search?q=
//
// An empty q is valid: the engine falls back to the unfiltered listing.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Search(UserID(r), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, noteList(result))
}
