// Package handlers provides API route assembly.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inkwell-notes/backend/internal/db"
	"github.com/inkwell-notes/backend/internal/notes"
)

// NewRouter assembles the full API surface.
func NewRouter(svc *notes.Service, prefs db.PreferencesRepository) chi.Router {
	notesHandler := NewNotesHandler(svc)
	searchHandler := NewSearchHandler(svc)
	tagsHandler := NewTagsHandler(svc)
	prefsHandler := NewPreferencesHandler(prefs)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(RequireUser)

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", notesHandler.List)
			r.Post("/", notesHandler.Create)
			r.Get("/search", searchHandler.Search)
			r.Get("/{id}", notesHandler.Get)
			r.Patch("/{id}", notesHandler.Update)
			r.Post("/{id}/archive", notesHandler.ToggleArchive)
			r.Delete("/{id}", notesHandler.Delete)
		})

		r.Get("/api/tags", tagsHandler.List)

		r.Route("/api/preferences", func(r chi.Router) {
			r.Get("/", prefsHandler.Get)
			r.Put("/", prefsHandler.Put)
		})
	})

	return r
}
