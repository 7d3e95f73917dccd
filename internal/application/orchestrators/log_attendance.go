package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/attendance"
)

// AttendanceStore defines the attendance persistence interface for the
// tracker.
type AttendanceStore interface {
	Entries(ctx context.Context, userID string) []attendance.Entry
	SaveEntries(ctx context.Context, userID string, entries []attendance.Entry) error
	Streak(ctx context.Context, userID string) attendance.Streak
	SaveStreak(ctx context.Context, userID string, streak attendance.Streak) error
}

// LogAttendanceInput carries input for the attendance tracker. A nil Status
// clears the entry for the date instead of setting one.
type LogAttendanceInput struct {
	UserID string
	Date   string // YYYY-MM-DD
	Status *string
}

// LogAttendanceDeps holds dependencies for LogAttendance.
type LogAttendanceDeps struct {
	AttendanceStore AttendanceStore
}

// ExecuteLogAttendance sets or clears exactly one entry for (user, date) and
// recomputes the streak.
// PRE: Date is YYYY-MM-DD; Status, when set, is present or rest
// POST: At most one entry exists for the date; Best streak never decreased
func ExecuteLogAttendance(ctx context.Context, input LogAttendanceInput, deps LogAttendanceDeps) error {
	if input.UserID == "" {
		return errors.New("user ID is required")
	}

	entries := deps.AttendanceStore.Entries(ctx, input.UserID)
	if input.Status == nil {
		entries = attendance.ClearEntry(entries, input.Date)
	} else {
		entry := attendance.Entry{Date: input.Date, Status: *input.Status}
		if err := entry.Validate(); err != nil {
			return err
		}
		entries = attendance.SetEntry(entries, input.Date, *input.Status)
	}
	if err := deps.AttendanceStore.SaveEntries(ctx, input.UserID, entries); err != nil {
		return err
	}

	streak := deps.AttendanceStore.Streak(ctx, input.UserID)
	streak.Observe(attendance.ComputeStreak(entries))
	if err := deps.AttendanceStore.SaveStreak(ctx, input.UserID, streak); err != nil {
		return err
	}

	slog.Info("attendance_event", "event", "attendance_logged", "user_id", input.UserID,
		"date", input.Date, "cleared", input.Status == nil, "streak", streak.Current, "best", streak.Best)
	return nil
}

// Tracker adapts ExecuteLogAttendance to the session engine's
// AttendanceTracker interface.
type Tracker struct {
	AttendanceStore AttendanceStore
}

// LogPresent marks one day present and recomputes the streak.
func (t *Tracker) LogPresent(ctx context.Context, userID, date string) error {
	status := attendance.StatusPresent
	return ExecuteLogAttendance(ctx, LogAttendanceInput{UserID: userID, Date: date, Status: &status},
		LogAttendanceDeps{AttendanceStore: t.AttendanceStore})
}
