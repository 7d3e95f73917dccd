// Package chat is the typed accessor for the chats collection: message
// threads nested by trainer then member.
package chat

import (
	"context"

	"gymdesk/internal/adapters/storage/docstore"
	domain "gymdesk/internal/domain/chat"
)

// Threads is the persisted shape of the chats collection.
type Threads map[string]map[string]domain.Thread

// Store persists trainer/member chat threads.
type Store struct {
	docs docstore.Store
}

// NewStore creates a new chat Store over the document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Thread returns the ordered message sequence for one (trainer, member)
// pair, empty when none exists.
func (s *Store) Thread(ctx context.Context, trainerID, memberID string) domain.Thread {
	threads := docstore.Get(ctx, s.docs, docstore.CollectionChats, Threads{})
	return threads[trainerID][memberID]
}

// ThreadsForMember returns every thread the member participates in, keyed by
// trainer ID.
func (s *Store) ThreadsForMember(ctx context.Context, memberID string) map[string]domain.Thread {
	threads := docstore.Get(ctx, s.docs, docstore.CollectionChats, Threads{})
	out := make(map[string]domain.Thread)
	for trainerID, byMember := range threads {
		if t, ok := byMember[memberID]; ok {
			out[trainerID] = t
		}
	}
	return out
}

// SaveThread replaces the thread for one (trainer, member) pair, leaving all
// other threads untouched.
func (s *Store) SaveThread(ctx context.Context, trainerID, memberID string, t domain.Thread) error {
	threads := docstore.Get(ctx, s.docs, docstore.CollectionChats, Threads{})
	if threads[trainerID] == nil {
		threads[trainerID] = make(map[string]domain.Thread)
	}
	threads[trainerID][memberID] = t
	return docstore.Save(ctx, s.docs, docstore.CollectionChats, threads)
}
