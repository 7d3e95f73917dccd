package orchestrators_test

import (
	"context"
	"testing"
	"time"

	attendanceStore "gymdesk/internal/adapters/storage/attendance"
	"gymdesk/internal/adapters/storage/docstore"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/domain/attendance"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

func strPtr(s string) *string { return &s }

func logDay(t *testing.T, store *attendanceStore.Store, userID, date, status string) {
	t.Helper()
	err := orchestrators.ExecuteLogAttendance(context.Background(), orchestrators.LogAttendanceInput{
		UserID: userID,
		Date:   date,
		Status: &status,
	}, orchestrators.LogAttendanceDeps{AttendanceStore: store})
	if err != nil {
		t.Fatalf("unexpected error logging %s: %v", date, err)
	}
}

// TestExecuteLogAttendance_SetAndReplace tests one-entry-per-date semantics.
func TestExecuteLogAttendance_SetAndReplace(t *testing.T) {
	ctx := context.Background()
	store := attendanceStore.NewStore(docstore.NewMemStore())

	logDay(t, store, "u1", "2024-01-01", attendance.StatusPresent)
	logDay(t, store, "u1", "2024-01-01", attendance.StatusRest)

	entries := store.Entries(ctx, "u1")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(entries))
	}
	if entries[0].Status != attendance.StatusRest {
		t.Errorf("expected rest, got %s", entries[0].Status)
	}
}

// TestExecuteLogAttendance_Validation tests rejection before any write.
func TestExecuteLogAttendance_Validation(t *testing.T) {
	ctx := context.Background()
	store := attendanceStore.NewStore(docstore.NewMemStore())

	err := orchestrators.ExecuteLogAttendance(ctx, orchestrators.LogAttendanceInput{
		UserID: "u1",
		Date:   "2024-01-01",
		Status: strPtr("absent"),
	}, orchestrators.LogAttendanceDeps{AttendanceStore: store})
	if err != attendance.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if entries := store.Entries(ctx, "u1"); len(entries) != 0 {
		t.Errorf("expected store unchanged, got %v", entries)
	}
}

// TestExecuteLogAttendance_StreakRecompute tests the end-to-end streak rule
// from the gap scenario: three present days, a gap, then one present day.
func TestExecuteLogAttendance_StreakRecompute(t *testing.T) {
	ctx := context.Background()
	store := attendanceStore.NewStore(docstore.NewMemStore())

	logDay(t, store, "u1", "2024-01-01", attendance.StatusPresent)
	logDay(t, store, "u1", "2024-01-02", attendance.StatusPresent)
	logDay(t, store, "u1", "2024-01-03", attendance.StatusPresent)
	if s := store.Streak(ctx, "u1"); s.Current != 3 || s.Best != 3 {
		t.Errorf("expected 3/3, got %d/%d", s.Current, s.Best)
	}

	// nothing on 01-04, then present on 01-05
	logDay(t, store, "u1", "2024-01-05", attendance.StatusPresent)
	if s := store.Streak(ctx, "u1"); s.Current != 1 || s.Best != 3 {
		t.Errorf("expected current=1 best=3 after gap, got %d/%d", s.Current, s.Best)
	}
}

// TestExecuteLogAttendance_Clear tests that a nil status removes the entry.
func TestExecuteLogAttendance_Clear(t *testing.T) {
	ctx := context.Background()
	store := attendanceStore.NewStore(docstore.NewMemStore())

	logDay(t, store, "u1", "2024-01-01", attendance.StatusPresent)
	err := orchestrators.ExecuteLogAttendance(ctx, orchestrators.LogAttendanceInput{
		UserID: "u1",
		Date:   "2024-01-01",
	}, orchestrators.LogAttendanceDeps{AttendanceStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries := store.Entries(ctx, "u1"); len(entries) != 0 {
		t.Errorf("expected entry cleared, got %v", entries)
	}
	// best survives the clear
	if s := store.Streak(ctx, "u1"); s.Current != 0 || s.Best != 1 {
		t.Errorf("expected 0/1, got %d/%d", s.Current, s.Best)
	}
}

// TestTracker_LogPresent tests the session-engine adapter.
func TestTracker_LogPresent(t *testing.T) {
	ctx := context.Background()
	store := attendanceStore.NewStore(docstore.NewMemStore())
	tracker := &orchestrators.Tracker{AttendanceStore: store}

	if err := tracker.LogPresent(ctx, "u1", "2026-03-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := store.Entries(ctx, "u1")
	if len(entries) != 1 || entries[0].Status != attendance.StatusPresent {
		t.Errorf("expected one present entry, got %v", entries)
	}
	if s := store.Streak(ctx, "u1"); s.Current != 1 {
		t.Errorf("expected streak 1, got %d", s.Current)
	}
}
