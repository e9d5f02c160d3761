// Package db provides FTS5 content index search for notes.
package db

import (
	"strings"

	"github.com/inkwell-notes/backend/internal/models"
)

// SearchContent performs an indexed full-text lookup over the plain-text
// content of one user's non-archived notes. Matching semantics are those of
// the FTS5 porter tokenizer (token containment with prefix matching), not
// substring equality; title and tag matching is handled by the scan branch
// in the notes package.
func (r *Repository) SearchContent(userID, term string) ([]*models.Note, error) {
	match := FTSMatchExpr(term)
	if match == "" {
		return nil, nil
	}

	query := `
	SELECT ` + prefixColumns("n") + `
	FROM notes n
	INNER JOIN notes_fts fts ON n.rowid = fts.rowid
	WHERE notes_fts MATCH ? AND n.user_id = ? AND n.is_archived = 0
	ORDER BY n.updated_at DESC
	`
	stmt, err := r.PrepareStmt(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.Query(match, userID)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// FTSMatchExpr converts a raw user term into a safe FTS5 MATCH expression.
// Each whitespace-separated token is double-quoted (neutralizing FTS5
// operators) and given a prefix star. Returns "" when the term carries no
// tokens.
func FTSMatchExpr(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return ""
	}
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		// Punctuation-only tokens reduce to an empty phrase, which FTS5
		// rejects.
		if !strings.ContainsFunc(f, func(r rune) bool {
			return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 127
		}) {
			continue
		}
		f = strings.ReplaceAll(f, `"`, `""`)
		tokens = append(tokens, `"`+f+`"*`)
	}
	return strings.Join(tokens, " ")
}

// prefixColumns qualifies the shared note column list with a table alias.
func prefixColumns(alias string) string {
	cols := strings.Split(noteColumns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}
