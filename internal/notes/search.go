// Package notes provides the hybrid two-branch note search.
package notes

import (
	"sort"
	"strings"
	"sync"

	apperrors "github.com/inkwell-notes/backend/internal/errors"
	"github.com/inkwell-notes/backend/internal/models"
)

// Search performs the hybrid search over a user's notes.
//
// An empty or whitespace-only term falls back to the plain unfiltered
// listing, archived notes included. A non-empty term runs two independent
// retrievals: the content index over non-archived notes, and a linear
// title/tag scan that also excludes archived notes. The branches share no
// state and run concurrently; the merge waits for both, deduplicates by
// note identity (indexed results first, scan results appended), and
// re-sorts descending by updated-at. The re-sort is mandatory: the merge
// interleaves two differently-ordered sources.
func (s *Service) Search(userID, term string) ([]*models.Note, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.List(userID, ListOptions{})
	}

	var (
		wg         sync.WaitGroup
		indexed    []*models.Note
		scanned    []*models.Note
		indexedErr error
		scanErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		indexed, indexedErr = s.store.SearchContent(userID, term)
	}()
	go func() {
		defer wg.Done()
		var all []*models.Note
		all, scanErr = s.store.ListByUser(userID)
		if scanErr != nil {
			return
		}
		for _, note := range all {
			if !note.IsArchived && Matches(note, term) {
				scanned = append(scanned, note)
			}
		}
	}()
	wg.Wait()

	if indexedErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "content search failed", indexedErr)
	}
	if scanErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "note scan failed", scanErr)
	}

	merged := make([]*models.Note, 0, len(indexed)+len(scanned))
	seen := make(map[models.UUID]struct{}, len(indexed)+len(scanned))
	for _, note := range indexed {
		if _, ok := seen[note.ID]; ok {
			continue
		}
		seen[note.ID] = struct{}{}
		merged = append(merged, note)
	}
	for _, note := range scanned {
		if _, ok := seen[note.ID]; ok {
			continue
		}
		seen[note.ID] = struct{}{}
		merged = append(merged, note)
	}

	// Stable so equal timestamps keep their merge order deterministically.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].UpdatedAt > merged[j].UpdatedAt
	})
	return merged, nil
}
