package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	"gymdesk/internal/adapters/storage/docstore"
)

// TestSQLiteStore_RoundTrip tests raw collection operations against a real
// database file.
func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gymdesk.db")

	db, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	store := docstore.NewSQLiteStore(storage.NewTimedDB(db))

	// missing collection
	if _, ok, err := store.GetRaw(ctx, "gym_users"); err != nil || ok {
		t.Fatalf("expected missing collection, got ok=%v err=%v", ok, err)
	}

	// write, read back verbatim
	payload := `[{"id":"u1"}]`
	if err := store.SetRaw(ctx, "gym_users", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok, err := store.GetRaw(ctx, "gym_users")
	if err != nil || !ok || got != payload {
		t.Errorf("expected %q, got %q (ok=%v err=%v)", payload, got, ok, err)
	}

	// full replace, no merge
	if err := store.SetRaw(ctx, "gym_users", `[]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _, _ = store.GetRaw(ctx, "gym_users")
	if got != `[]` {
		t.Errorf("expected full replace, got %q", got)
	}

	// names are sorted
	store.SetRaw(ctx, "gym_streaks", `{}`)
	store.SetRaw(ctx, "gym_attendance", `{}`)
	names, err := store.Names(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"gym_attendance", "gym_streaks", "gym_users"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}

	// delete
	if err := store.Delete(ctx, "gym_users"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := store.GetRaw(ctx, "gym_users"); ok {
		t.Error("expected collection deleted")
	}
}
