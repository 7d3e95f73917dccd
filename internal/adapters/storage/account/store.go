// Package account is the typed accessor for the users collection.
package account

import (
	"context"
	"strings"

	"gymdesk/internal/adapters/storage/docstore"
	domain "gymdesk/internal/domain/account"
)

// Store persists login users.
type Store struct {
	docs docstore.Store
}

// NewStore creates a new account Store over the document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Users returns every user.
func (s *Store) Users(ctx context.Context) []domain.User {
	return docstore.Get(ctx, s.docs, docstore.CollectionUsers, []domain.User{})
}

// SaveUsers fully replaces the users collection.
func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionUsers, users)
}

// ByEmail looks up a user by email, case-insensitive.
// POST: Returns the user and true, or zero value and false
func (s *Store) ByEmail(ctx context.Context, email string) (domain.User, bool) {
	for _, u := range s.Users(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}
