// Package notice is the typed accessor for the announcements, settings and
// attendance-reminder collections.
package notice

import (
	"context"

	"gymdesk/internal/adapters/storage/docstore"
	domain "gymdesk/internal/domain/notice"
)

// Store persists announcements, settings and reminder logs.
type Store struct {
	docs docstore.Store
}

// NewStore creates a new notice Store over the document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Announcements returns every announcement, append order.
func (s *Store) Announcements(ctx context.Context) []domain.Announcement {
	return docstore.Get(ctx, s.docs, docstore.CollectionAnnouncements, []domain.Announcement{})
}

// SaveAnnouncements fully replaces the announcements collection.
func (s *Store) SaveAnnouncements(ctx context.Context, list []domain.Announcement) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionAnnouncements, list)
}

// Settings returns the installation settings, defaults when missing or
// corrupt.
func (s *Store) Settings(ctx context.Context) domain.Settings {
	return docstore.Get(ctx, s.docs, docstore.CollectionSettings, domain.DefaultSettings())
}

// SaveSettings replaces the settings collection.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionSettings, settings)
}

// Reminders returns every logged attendance reminder.
func (s *Store) Reminders(ctx context.Context) []domain.Reminder {
	return docstore.Get(ctx, s.docs, docstore.CollectionReminders, []domain.Reminder{})
}

// AppendReminder logs one sent reminder.
func (s *Store) AppendReminder(ctx context.Context, r domain.Reminder) error {
	reminders := s.Reminders(ctx)
	return docstore.Save(ctx, s.docs, docstore.CollectionReminders, append(reminders, r))
}
