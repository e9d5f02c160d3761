// Package db provides unit tests for note repository operations.
package db

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/inkwell-notes/backend/internal/markup"
	"github.com/inkwell-notes/backend/internal/models"
	"github.com/inkwell-notes/backend/internal/uuid"
)

// setupTestRepo creates a migrated in-memory database and a Repository.
func setupTestRepo(t *testing.T) (*sql.DB, *Repository) {
	t.Helper()
	database := newMigratedDB(t)
	repo := NewRepository(database)
	t.Cleanup(func() { repo.Close() })
	return database, repo
}

// insertNote inserts a note with explicit timestamps, bypassing CreateNote
// so ordering tests control updated_at.
func insertNote(t *testing.T, database *sql.DB, userID, title, content string, tags models.StringList, archived bool, updatedAt int64) string {
	t.Helper()
	id := uuid.New()
	query := `
	INSERT INTO notes (id, user_id, title, content, content_plain, tags, is_archived, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := database.Exec(query, id, userID, title, content, markup.Plain(content),
		tags, archived, updatedAt, updatedAt)
	if err != nil {
		t.Fatalf("Failed to insert test note: %v", err)
	}
	return id
}

func TestCreateNote(t *testing.T) {
	_, repo := setupTestRepo(t)

	note := &models.Note{
		UserID:  "u1",
		Title:   "Trip Plan",
		Content: "pack light",
		Tags:    models.StringList{"travel", "2024"},
	}
	if err := repo.CreateNote(note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if note.ID == "" {
		t.Error("Expected ID to be generated")
	}
	if !uuid.IsValid(note.ID.String()) {
		t.Errorf("Expected a valid UUID v4 id, got %s", note.ID)
	}
	if note.CreatedAt == 0 || note.UpdatedAt != note.CreatedAt {
		t.Errorf("Expected matching creation timestamps, got created=%d updated=%d", note.CreatedAt, note.UpdatedAt)
	}
	if note.IsArchived {
		t.Error("Expected new note to not be archived")
	}
}

func TestCreateNoteDefaultsTags(t *testing.T) {
	_, repo := setupTestRepo(t)

	note := &models.Note{UserID: "u1", Title: "Untagged"}
	if err := repo.CreateNote(note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	retrieved, err := repo.GetNote(note.ID.String())
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if retrieved.Tags == nil || len(retrieved.Tags) != 0 {
		t.Errorf("Expected empty tag list, got %v", retrieved.Tags)
	}
}

func TestGetNote(t *testing.T) {
	_, repo := setupTestRepo(t)

	created := &models.Note{
		UserID:   "u1",
		Title:    "Groceries",
		Content:  "buy milk",
		Tags:     models.StringList{"home"},
		Image:    "https://cdn.example.com/img.png",
		Category: "errands",
	}
	if err := repo.CreateNote(created); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	retrieved, err := repo.GetNote(created.ID.String())
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if retrieved.Title != "Groceries" || retrieved.Content != "buy milk" {
		t.Errorf("Unexpected note fields: %+v", retrieved)
	}
	if retrieved.Image != created.Image {
		t.Errorf("Expected image %s, got %s", created.Image, retrieved.Image)
	}
	if retrieved.Category != "errands" {
		t.Errorf("Expected classification field to round-trip, got %q", retrieved.Category)
	}
}

func TestGetNoteNotFound(t *testing.T) {
	_, repo := setupTestRepo(t)

	_, err := repo.GetNote(uuid.New())
	if err != sql.ErrNoRows {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestListByUserOrdering(t *testing.T) {
	database, repo := setupTestRepo(t)

	now := time.Now().UnixMilli()
	insertNote(t, database, "u1", "Oldest", "", nil, false, now-3000)
	insertNote(t, database, "u1", "Newest", "", nil, false, now-1000)
	insertNote(t, database, "u1", "Middle", "", nil, true, now-2000)

	notes, err := repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("Expected 3 notes, got %d", len(notes))
	}
	titles := []string{notes[0].Title, notes[1].Title, notes[2].Title}
	if titles[0] != "Newest" || titles[1] != "Middle" || titles[2] != "Oldest" {
		t.Errorf("Expected descending updated_at order, got %v", titles)
	}
}

func TestListByUserScoping(t *testing.T) {
	database, repo := setupTestRepo(t)

	now := time.Now().UnixMilli()
	insertNote(t, database, "u1", "Mine", "", nil, false, now)
	insertNote(t, database, "u2", "Theirs", "", nil, false, now)

	notes, err := repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "Mine" {
		t.Errorf("Expected only u1's note, got %v", notes)
	}

	empty, err := repo.ListByUser("nobody")
	if err != nil {
		t.Fatalf("ListByUser for unknown user failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result for unknown user, got %d notes", len(empty))
	}
}

func TestListByUserArchived(t *testing.T) {
	database, repo := setupTestRepo(t)

	now := time.Now().UnixMilli()
	insertNote(t, database, "u1", "Active", "", nil, false, now-1000)
	insertNote(t, database, "u1", "Archived", "", nil, true, now-2000)

	active, err := repo.ListByUserArchived("u1", false)
	if err != nil {
		t.Fatalf("ListByUserArchived failed: %v", err)
	}
	if len(active) != 1 || active[0].Title != "Active" {
		t.Errorf("Expected only the active note, got %v", active)
	}

	archived, err := repo.ListByUserArchived("u1", true)
	if err != nil {
		t.Fatalf("ListByUserArchived failed: %v", err)
	}
	if len(archived) != 1 || archived[0].Title != "Archived" {
		t.Errorf("Expected only the archived note, got %v", archived)
	}
}

func TestPatchNote(t *testing.T) {
	database, repo := setupTestRepo(t)

	old := time.Now().UnixMilli() - 60000
	id := insertNote(t, database, "u1", "Before", "original content", models.StringList{"a"}, false, old)

	title := "After"
	patched, err := repo.PatchNote(id, &models.NotePatch{Title: &title})
	if err != nil {
		t.Fatalf("PatchNote failed: %v", err)
	}

	if patched.Title != "After" {
		t.Errorf("Expected patched title, got %s", patched.Title)
	}
	if patched.Content != "original content" {
		t.Errorf("Expected unpatched content to survive, got %q", patched.Content)
	}
	if len(patched.Tags) != 1 || patched.Tags[0] != "a" {
		t.Errorf("Expected unpatched tags to survive, got %v", patched.Tags)
	}
	if patched.UpdatedAt <= old {
		t.Errorf("Expected updated_at to advance past %d, got %d", old, patched.UpdatedAt)
	}
}

func TestPatchNoteAlwaysRefreshesUpdatedAt(t *testing.T) {
	database, repo := setupTestRepo(t)

	old := time.Now().UnixMilli() - 60000
	id := insertNote(t, database, "u1", "Note", "", nil, false, old)

	patched, err := repo.PatchNote(id, &models.NotePatch{})
	if err != nil {
		t.Fatalf("PatchNote with empty patch failed: %v", err)
	}
	if patched.UpdatedAt <= old {
		t.Errorf("Expected empty patch to still refresh updated_at, got %d", patched.UpdatedAt)
	}
}

func TestPatchNoteNotFound(t *testing.T) {
	_, repo := setupTestRepo(t)

	title := "X"
	_, err := repo.PatchNote(uuid.New(), &models.NotePatch{Title: &title})
	if err != sql.ErrNoRows {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestPatchNoteReindexesContent(t *testing.T) {
	database, repo := setupTestRepo(t)

	id := insertNote(t, database, "u1", "Note", "about sailing", nil, false, time.Now().UnixMilli())

	content := "about gardening"
	if _, err := repo.PatchNote(id, &models.NotePatch{Content: &content}); err != nil {
		t.Fatalf("PatchNote failed: %v", err)
	}

	hits, err := repo.SearchContent("u1", "gardening")
	if err != nil {
		t.Fatalf("SearchContent failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected new content to be indexed, got %d hits", len(hits))
	}

	stale, err := repo.SearchContent("u1", "sailing")
	if err != nil {
		t.Fatalf("SearchContent failed: %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("Expected old content to leave the index, got %d hits", len(stale))
	}
}

func TestDeleteNoteIsIdempotent(t *testing.T) {
	database, repo := setupTestRepo(t)

	id := insertNote(t, database, "u1", "Doomed", "", nil, false, time.Now().UnixMilli())

	if err := repo.DeleteNote(id); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if _, err := repo.GetNote(id); err != sql.ErrNoRows {
		t.Errorf("Expected note to be gone, got %v", err)
	}

	// Deleting an already-absent id is not an error
	if err := repo.DeleteNote(id); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
}

func TestPreferencesDefaults(t *testing.T) {
	_, repo := setupTestRepo(t)

	prefs, err := repo.GetPreferences("u1")
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if prefs.ColorTheme != models.DefaultColorTheme || prefs.FontTheme != models.DefaultFontTheme {
		t.Errorf("Expected default preferences, got %+v", prefs)
	}
}

func TestPreferencesUpsert(t *testing.T) {
	_, repo := setupTestRepo(t)

	first := &models.Preferences{UserID: "u1", ColorTheme: "dark", FontTheme: "mono"}
	if err := repo.SavePreferences(first); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	second := &models.Preferences{UserID: "u1", ColorTheme: "sepia", FontTheme: "serif"}
	if err := repo.SavePreferences(second); err != nil {
		t.Fatalf("SavePreferences upsert failed: %v", err)
	}

	prefs, err := repo.GetPreferences("u1")
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if prefs.ColorTheme != "sepia" || prefs.FontTheme != "serif" {
		t.Errorf("Expected upserted preferences, got %+v", prefs)
	}
}
