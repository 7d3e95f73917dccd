// Package attendance is the typed accessor for the per-user attendance and
// streak collections.
package attendance

import (
	"context"

	"gymdesk/internal/adapters/storage/docstore"
	domain "gymdesk/internal/domain/attendance"
)

// Store persists attendance entries and streak state per user.
type Store struct {
	docs docstore.Store
}

// NewStore creates a new attendance Store over the document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Entries returns one user's attendance entries.
func (s *Store) Entries(ctx context.Context, userID string) []domain.Entry {
	entries, _ := docstore.GetUserEntry(ctx, s.docs, docstore.CollectionAttendance, userID, []domain.Entry{})
	return entries
}

// SaveEntries fully replaces one user's attendance entries.
func (s *Store) SaveEntries(ctx context.Context, userID string, entries []domain.Entry) error {
	return docstore.SaveUserEntry(ctx, s.docs, docstore.CollectionAttendance, userID, &entries)
}

// Streak returns one user's streak state, zero values when unset.
func (s *Store) Streak(ctx context.Context, userID string) domain.Streak {
	streak, _ := docstore.GetUserEntry(ctx, s.docs, docstore.CollectionStreaks, userID, domain.Streak{})
	return streak
}

// SaveStreak replaces one user's streak state.
func (s *Store) SaveStreak(ctx context.Context, userID string, streak domain.Streak) error {
	return docstore.SaveUserEntry(ctx, s.docs, docstore.CollectionStreaks, userID, &streak)
}
