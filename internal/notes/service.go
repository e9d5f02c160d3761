// Package notes implements the note retrieval engines: filtered listing,
// hybrid search, and tag aggregation.
package notes

import (
	"database/sql"
	"sort"
	"strings"

	"github.com/inkwell-notes/backend/internal/db"
	apperrors "github.com/inkwell-notes/backend/internal/errors"
	"github.com/inkwell-notes/backend/internal/models"
	"github.com/inkwell-notes/backend/internal/uuid"
)

// Service exposes every note operation. All retrieval methods are stateless
// reads; mutations touch exactly one record.
type Service struct {
	store db.NoteRepository
}

// NewService creates a Service on top of a note store.
func NewService(store db.NoteRepository) *Service {
	return &Service{store: store}
}

// ListOptions narrows a listing. A nil Archived means no archived filter.
type ListOptions struct {
	Archived  *bool
	TagFilter string
}

// CreateInput carries the fields accepted when creating a note.
type CreateInput struct {
	UserID   string            `json:"user_id"`
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Image    string            `json:"image"`
	Tags     models.StringList `json:"tags"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Status   string            `json:"status"`
	Location string            `json:"location"`
}

// List returns a user's notes in descending updated-at order. With an
// archived flag set it is served by the composite index; the tag filter is
// a linear post-filter that preserves the input order. An unknown user
// yields an empty result, not an error.
func (s *Service) List(userID string, opts ListOptions) ([]*models.Note, error) {
	var notes []*models.Note
	var err error
	if opts.Archived == nil {
		notes, err = s.store.ListByUser(userID)
	} else {
		notes, err = s.store.ListByUserArchived(userID, *opts.Archived)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to list notes", err)
	}

	if opts.TagFilter == "" {
		return notes, nil
	}

	filtered := notes[:0:0]
	for _, note := range notes {
		if TagMatches(note, opts.TagFilter) {
			filtered = append(filtered, note)
		}
	}
	return filtered, nil
}

// Tags returns the distinct tags across all of a user's notes, archived
// included, lexicographically sorted. The set is recomputed on every call.
func (s *Service) Tags(userID string) ([]string, error) {
	notes, err := s.store.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to list notes for tags", err)
	}

	set := make(map[string]struct{})
	for _, note := range notes {
		for _, tag := range note.Tags {
			set[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// Get returns one of a user's notes. A note owned by someone else is
// indistinguishable from an absent one, as is a malformed id.
func (s *Service) Get(userID, id string) (*models.Note, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	note, err := s.store.GetNote(id)
	if err == sql.ErrNoRows {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to get note", err)
	}
	if note.UserID != userID {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	return note, nil
}

// Create validates and inserts a new note. New notes are never archived and
// both timestamps are set to now.
func (s *Service) Create(input CreateInput) (*models.Note, error) {
	if input.UserID == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "user id is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "title is required")
	}

	note := &models.Note{
		UserID:   input.UserID,
		Title:    input.Title,
		Content:  input.Content,
		Image:    input.Image,
		Tags:     input.Tags,
		Name:     input.Name,
		Category: input.Category,
		Status:   input.Status,
		Location: input.Location,
	}
	if err := s.store.CreateNote(note); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to create note", err)
	}
	return note, nil
}

// Update applies a partial patch and returns the patched note. Patching an
// absent id is a hard NotFound error.
func (s *Service) Update(id string, patch *models.NotePatch) (*models.Note, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "title cannot be empty")
	}

	note, err := s.store.PatchNote(id, patch)
	if err == sql.ErrNoRows {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to patch note", err)
	}
	return note, nil
}

// ToggleArchive flips a note's archived flag with a fetch-then-patch.
// NotFound is a hard error, not a no-op.
func (s *Service) ToggleArchive(id string) (*models.Note, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	note, err := s.store.GetNote(id)
	if err == sql.ErrNoRows {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to get note", err)
	}

	archived := !note.IsArchived
	patched, err := s.store.PatchNote(id, &models.NotePatch{IsArchived: &archived})
	if err == sql.ErrNoRows {
		return nil, apperrors.New(apperrors.ErrNoteNotFound, "note not found: "+id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to toggle archive", err)
	}
	return patched, nil
}

// Delete permanently removes a note. Deleting an absent or malformed id
// succeeds.
func (s *Service) Delete(id string) error {
	if !uuid.IsValid(id) {
		return nil
	}
	if err := s.store.DeleteNote(id); err != nil {
		return apperrors.Wrap(apperrors.ErrStore, "failed to delete note", err)
	}
	return nil
}
