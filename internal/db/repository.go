// Package db provides CRUD repository operations for Inkwell data models.
package db

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/inkwell-notes/backend/internal/markup"
	"github.com/inkwell-notes/backend/internal/models"
	"github.com/inkwell-notes/backend/internal/uuid"
)

// noteColumns is the scan column list shared by every note query.
// content_plain is a derived column and never leaves the store.
const noteColumns = `id, user_id, title, content, image, tags, is_archived,
	created_at, updated_at, name, category, status, location`

// Repository provides persistence operations for notes and preferences.
// Frequently used queries go through a prepared statement cache.
type Repository struct {
	db *sql.DB

	// Statements are prepared on first use and cached for reuse.
	stmtCache sync.Map // map[string]*sql.Stmt
}

// NewRepository creates a new Repository instance.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// PrepareStmt gets or creates a prepared statement from the cache.
// Key is the query string, value is the prepared statement.
func (r *Repository) PrepareStmt(query string) (*sql.Stmt, error) {
	if stmt, ok := r.stmtCache.Load(query); ok {
		return stmt.(*sql.Stmt), nil
	}

	stmt, err := r.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}

	actual, loaded := r.stmtCache.LoadOrStore(query, stmt)
	if loaded {
		// Another goroutine already prepared this, close our duplicate
		stmt.Close()
		return actual.(*sql.Stmt), nil
	}

	return stmt, nil
}

// Close closes all cached prepared statements.
func (r *Repository) Close() error {
	var firstErr error
	r.stmtCache.Range(func(key, value interface{}) bool {
		stmt := value.(*sql.Stmt)
		if err := stmt.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		return true
	})
	return firstErr
}

// scanner abstracts *sql.Row and *sql.Rows for note scanning.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(s scanner) (*models.Note, error) {
	var note models.Note
	var image, name, category, status, location sql.NullString
	err := s.Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &image,
		&note.Tags, &note.IsArchived, &note.CreatedAt, &note.UpdatedAt,
		&name, &category, &status, &location,
	)
	if err != nil {
		return nil, err
	}
	note.Image = image.String
	note.Name = name.String
	note.Category = category.String
	note.Status = status.String
	note.Location = location.String
	return &note, nil
}

func collectNotes(rows *sql.Rows) ([]*models.Note, error) {
	defer rows.Close()
	var notes []*models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

// =====================================================
// Note Operations
// =====================================================

// CreateNote inserts a new note. ID and timestamps are assigned here; the
// derived content_plain column is computed from the note content.
func (r *Repository) CreateNote(note *models.Note) error {
	note.ID = models.UUID(uuid.New())
	note.Touch()
	note.CreatedAt = note.UpdatedAt
	if note.Tags == nil {
		note.Tags = models.StringList{}
	}

	query := `
	INSERT INTO notes (id, user_id, title, content, content_plain, image, tags,
		is_archived, created_at, updated_at, name, category, status, location)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, note.ID, note.UserID, note.Title, note.Content,
		markup.Plain(note.Content), nullable(note.Image), note.Tags,
		note.IsArchived, note.CreatedAt, note.UpdatedAt,
		nullable(note.Name), nullable(note.Category), nullable(note.Status),
		nullable(note.Location))
	return err
}

// GetNote retrieves a note by ID. Returns sql.ErrNoRows when absent.
func (r *Repository) GetNote(id string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`
	stmt, err := r.PrepareStmt(query)
	if err != nil {
		return nil, err
	}
	return scanNote(stmt.QueryRow(id))
}

// ListByUser returns all of a user's notes, most recently updated first.
// Served by the (user_id, updated_at DESC) index.
func (r *Repository) ListByUser(userID string) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? ORDER BY updated_at DESC`
	stmt, err := r.PrepareStmt(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.Query(userID)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// ListByUserArchived returns a user's notes narrowed by archived flag,
// most recently updated first. Served by the composite
// (user_id, is_archived, updated_at DESC) index.
func (r *Repository) ListByUserArchived(userID string, archived bool) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? AND is_archived = ? ORDER BY updated_at DESC`
	stmt, err := r.PrepareStmt(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.Query(userID, archived)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// PatchNote applies a partial update. Only supplied fields change;
// updated_at is always refreshed. Returns sql.ErrNoRows when the id is
// absent, and the patched note otherwise.
func (r *Repository) PatchNote(id string, patch *models.NotePatch) (*models.Note, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UnixMilli()}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?", "content_plain = ?")
		args = append(args, *patch.Content, markup.Plain(*patch.Content))
	}
	if patch.Image != nil {
		sets = append(sets, "image = ?")
		args = append(args, nullable(*patch.Image))
	}
	if patch.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, *patch.Tags)
	}
	if patch.IsArchived != nil {
		sets = append(sets, "is_archived = ?")
		args = append(args, *patch.IsArchived)
	}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, nullable(*patch.Name))
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, nullable(*patch.Category))
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, nullable(*patch.Status))
	}
	if patch.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, nullable(*patch.Location))
	}

	query := "UPDATE notes SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, sql.ErrNoRows
	}

	return r.GetNote(id)
}

// DeleteNote permanently deletes a note. Deleting an absent id is not an
// error.
func (r *Repository) DeleteNote(id string) error {
	_, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	return err
}

// =====================================================
// Preferences Operations
// =====================================================

// GetPreferences returns a user's theme preferences, falling back to the
// defaults when no record exists.
func (r *Repository) GetPreferences(userID string) (*models.Preferences, error) {
	query := `SELECT user_id, color_theme, font_theme FROM user_preferences WHERE user_id = ?`
	var prefs models.Preferences
	err := r.db.QueryRow(query, userID).Scan(&prefs.UserID, &prefs.ColorTheme, &prefs.FontTheme)
	if err == sql.ErrNoRows {
		return models.DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences creates or replaces a user's theme preferences.
func (r *Repository) SavePreferences(prefs *models.Preferences) error {
	query := `
	INSERT INTO user_preferences (user_id, color_theme, font_theme)
	VALUES (?, ?, ?)
	ON CONFLICT(user_id) DO UPDATE SET color_theme = excluded.color_theme, font_theme = excluded.font_theme
	`
	_, err := r.db.Exec(query, prefs.UserID, prefs.ColorTheme, prefs.FontTheme)
	return err
}

// nullable maps an empty string to NULL so optional columns stay NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
