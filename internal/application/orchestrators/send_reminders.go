package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/adapters/email"
	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/notice"
)

// ReminderMemberStore defines the member lookup interface for reminders.
type ReminderMemberStore interface {
	Members(ctx context.Context) []member.Member
}

// ReminderAttendanceStore defines the attendance lookup interface for
// reminders.
type ReminderAttendanceStore interface {
	Entries(ctx context.Context, userID string) []attendance.Entry
}

// ReminderLogStore defines the reminder log persistence interface.
type ReminderLogStore interface {
	Reminders(ctx context.Context) []notice.Reminder
	AppendReminder(ctx context.Context, r notice.Reminder) error
}

// ReminderSettingsStore reads the installation settings for the default
// inactivity threshold.
type ReminderSettingsStore interface {
	Settings(ctx context.Context) notice.Settings
}

// SendRemindersInput carries input for the reminder sweep.
type SendRemindersInput struct {
	AfterDays int // explicit inactivity threshold; <=0 uses the stored settings
}

// SendRemindersDeps holds dependencies for SendReminders. Now and GenerateID
// default to time.Now and uuid when unset.
type SendRemindersDeps struct {
	MemberStore     ReminderMemberStore
	AttendanceStore ReminderAttendanceStore
	ReminderStore   ReminderLogStore
	SettingsStore   ReminderSettingsStore
	Sender          email.Sender
	GenerateID      func() string
	Now             func() time.Time
}

// SendRemindersResult reports how the sweep went.
type SendRemindersResult struct {
	Sent    int
	Skipped int
}

// ExecuteSendReminders emails every active member whose last "present" day
// is older than the threshold, at most one reminder per member per day.
// Failures are per-member and never abort the sweep.
// POST: One Reminder log entry per sent email
func ExecuteSendReminders(ctx context.Context, input SendRemindersInput, deps SendRemindersDeps) (SendRemindersResult, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.GenerateID == nil {
		deps.GenerateID = func() string { return uuid.New().String() }
	}

	afterDays := input.AfterDays
	if afterDays <= 0 && deps.SettingsStore != nil {
		afterDays = deps.SettingsStore.Settings(ctx).ReminderAfterDays
	}
	if afterDays <= 0 {
		afterDays = notice.DefaultSettings().ReminderAfterDays
	}

	now := deps.Now()
	cutoff := now.AddDate(0, 0, -afterDays).Format(attendance.DateLayout)
	today := now.Format(attendance.DateLayout)

	alreadySent := make(map[string]bool)
	for _, r := range deps.ReminderStore.Reminders(ctx) {
		if r.SentAt.Format(attendance.DateLayout) == today {
			alreadySent[r.MemberID] = true
		}
	}

	var result SendRemindersResult
	for _, m := range deps.MemberStore.Members(ctx) {
		if !m.IsActive() || m.Email == "" || alreadySent[m.ID] {
			result.Skipped++
			continue
		}
		last := attendance.LastPresentDate(deps.AttendanceStore.Entries(ctx, m.ID))
		if last >= cutoff {
			result.Skipped++
			continue
		}

		_, err := deps.Sender.Send(ctx, email.SendRequest{
			To:      []string{m.Email},
			Subject: "We miss you at the gym",
			HTML: fmt.Sprintf("<p>Hi %s,</p><p>It has been a while since your last workout. Your streak is waiting!</p>",
				m.Name),
		})
		if err != nil {
			slog.Warn("reminder_event", "event", "reminder_failed", "member_id", m.ID, "error", err)
			result.Skipped++
			continue
		}

		log := notice.Reminder{ID: deps.GenerateID(), MemberID: m.ID, Email: m.Email, SentAt: now}
		if err := deps.ReminderStore.AppendReminder(ctx, log); err != nil {
			return result, err
		}
		result.Sent++
	}

	slog.Info("reminder_event", "event", "reminder_sweep_done", "sent", result.Sent, "skipped", result.Skipped)
	return result, nil
}
