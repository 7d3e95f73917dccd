// Package docstore is the namespaced key/value persistence layer every
// repository is built on. Each collection is one independently serialized
// JSON payload; reads never fail across the store boundary, they fall back to
// the caller's default value instead.
package docstore

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Collection name constants, one per domain area.
const (
	CollectionUsers           = "gym_users"
	CollectionMembers         = "gym_members"
	CollectionTrainers        = "gym_trainers"
	CollectionMembershipPlans = "gym_membership_plans"
	CollectionPayments        = "gym_payments"
	CollectionWorkoutPlans    = "gym_workout_plans"
	CollectionActiveWorkouts  = "gym_active_workouts"
	CollectionWorkoutRecords  = "gym_workout_records"
	CollectionAttendance      = "gym_attendance"
	CollectionStreaks         = "gym_streaks"
	CollectionChats           = "gym_chats"
	CollectionReminders       = "gym_attendance_reminders"
	CollectionSettings        = "gym_settings"
	CollectionAnnouncements   = "gym_announcements"
)

// Store is the raw storage medium: named collections of serialized payloads.
// Production uses SQLiteStore; tests use MemStore.
type Store interface {
	// GetRaw returns the raw serialized payload of a collection, with
	// ok=false when the collection has never been written.
	GetRaw(ctx context.Context, name string) (payload string, ok bool, err error)
	// SetRaw fully replaces a collection's payload.
	SetRaw(ctx context.Context, name, payload string) error
	// Delete removes a collection entirely.
	Delete(ctx context.Context, name string) error
	// Names lists every stored collection name, sorted.
	Names(ctx context.Context) ([]string, error)
}

// Get reads and decodes a collection, returning def when the collection is
// missing or its payload is malformed. Corruption is recovered locally and
// logged, never surfaced to the caller.
func Get[T any](ctx context.Context, s Store, name string, def T) T {
	payload, ok, err := s.GetRaw(ctx, name)
	if err != nil {
		slog.Warn("collection_read_failed", "collection", name, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		slog.Warn("collection_corrupt", "collection", name, "error", err)
		return def
	}
	return v
}

// Save serializes v and fully replaces the collection. Callers own the
// read-modify-write discipline; there is no partial merge.
func Save[T any](ctx context.Context, s Store, name string, v T) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.SetRaw(ctx, name, string(payload))
}

// GetUserEntry reads one user's entry from a collection kept as a sparse map
// keyed by user id.
// POST: Returns def and ok=false when the user has no entry
func GetUserEntry[T any](ctx context.Context, s Store, name, userID string, def T) (T, bool) {
	entries := Get(ctx, s, name, map[string]json.RawMessage{})
	raw, ok := entries[userID]
	if !ok {
		return def, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("user_entry_corrupt", "collection", name, "user_id", userID, "error", err)
		return def, false
	}
	return v, true
}

// SaveUserEntry writes one user's entry into a sparse per-user collection.
// A nil value removes the user's key instead of storing a null, keeping the
// collection sparse.
func SaveUserEntry[T any](ctx context.Context, s Store, name, userID string, v *T) error {
	entries := Get(ctx, s, name, map[string]json.RawMessage{})
	if v == nil {
		delete(entries, userID)
	} else {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		entries[userID] = raw
	}
	return Save(ctx, s, name, entries)
}
