// Package db provides repository interfaces for Inkwell data models.
package db

import (
	"github.com/inkwell-notes/backend/internal/models"
)

// NoteRepository defines the persistence operations the retrieval and
// mutation engines need. The interface allows mocking for testing.
type NoteRepository interface {
	// CreateNote inserts a new note, assigning ID and timestamps.
	CreateNote(note *models.Note) error

	// GetNote retrieves a note by ID. Returns sql.ErrNoRows when absent.
	GetNote(id string) (*models.Note, error)

	// ListByUser returns all of a user's notes, descending updated_at.
	ListByUser(userID string) ([]*models.Note, error)

	// ListByUserArchived narrows ListByUser by archived flag.
	ListByUserArchived(userID string, archived bool) ([]*models.Note, error)

	// SearchContent is the indexed full-text lookup over non-archived notes.
	SearchContent(userID, term string) ([]*models.Note, error)

	// PatchNote applies a partial update and refreshes updated_at.
	PatchNote(id string, patch *models.NotePatch) (*models.Note, error)

	// DeleteNote permanently deletes a note; absent ids are not an error.
	DeleteNote(id string) error
}

// PreferencesRepository defines operations for theme preference persistence.
type PreferencesRepository interface {
	// GetPreferences returns stored preferences or the defaults.
	GetPreferences(userID string) (*models.Preferences, error)

	// SavePreferences creates or replaces a user's preferences.
	SavePreferences(prefs *models.Preferences) error
}

// Ensure *Repository implements the interfaces at compile time.
var (
	_ NoteRepository        = (*Repository)(nil)
	_ PreferencesRepository = (*Repository)(nil)
)
