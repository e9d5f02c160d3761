// Package handlers provides the user preferences endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/inkwell-notes/backend/internal/db"
	apperrors "github.com/inkwell-notes/backend/internal/errors"
	"github.com/inkwell-notes/backend/internal/models"
)

// PreferencesHandler serves per-user display preferences.
type PreferencesHandler struct {
	store db.PreferencesRepository
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(store db.PreferencesRepository) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

// Get handles GET /api/preferences
//
// Users who never saved preferences receive the defaults.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.GetPreferences(UserID(r))
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.ErrStore, "load preferences", err))
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Put handles PUT /api/preferences
func (h *PreferencesHandler) Put(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, r, apperrors.New(apperrors.ErrInvalid, "invalid request body"))
		return
	}
	prefs.UserID = UserID(r)
	if prefs.ColorTheme == "" {
		prefs.ColorTheme = models.DefaultColorTheme
	}
	if prefs.FontTheme == "" {
		prefs.FontTheme = models.DefaultFontTheme
	}
	if err := h.store.SavePreferences(&prefs); err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.ErrStore, "save preferences", err))
		return
	}
	writeJSON(w, http.StatusOK, &prefs)
}
