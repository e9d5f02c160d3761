// Package notes implements the note retrieval engines: filtered listing,
// hybrid search, and tag aggregation.
package notes

import (
	"strings"

	"github.com/inkwell-notes/backend/internal/models"
)

// Matches reports whether term appears, case-insensitively, as a substring
// of the note's title or of any of its tags. Content matching is not this
// predicate's job; the content index covers it. Callers never pass an empty
// term.
func Matches(note *models.Note, term string) bool {
	lower := strings.ToLower(term)
	if strings.Contains(strings.ToLower(note.Title), lower) {
		return true
	}
	return tagMatches(note.Tags, lower)
}

// TagMatches reports whether any of the note's tags contains filter as a
// case-insensitive substring. Reused by the listing tag post-filter.
func TagMatches(note *models.Note, filter string) bool {
	return tagMatches(note.Tags, strings.ToLower(filter))
}

func tagMatches(tags models.StringList, lowerTerm string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowerTerm) {
			return true
		}
	}
	return false
}
