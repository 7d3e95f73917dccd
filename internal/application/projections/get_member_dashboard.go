package projections

import (
	"context"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/chat"
	"gymdesk/internal/domain/workout"
)

// DashboardAttendanceStore defines the attendance interface for the
// dashboard projection.
type DashboardAttendanceStore interface {
	Entries(ctx context.Context, userID string) []attendance.Entry
	Streak(ctx context.Context, userID string) attendance.Streak
}

// DashboardPlanStore defines the plan interface for the dashboard
// projection.
type DashboardPlanStore interface {
	PlanForMember(ctx context.Context, memberID string) (workout.Plan, bool)
}

// DashboardRecordStore defines the record interface for the dashboard
// projection.
type DashboardRecordStore interface {
	RecordsForUser(ctx context.Context, userID string) []workout.Record
}

// DashboardChatStore defines the chat interface for the dashboard
// projection.
type DashboardChatStore interface {
	ThreadsForMember(ctx context.Context, memberID string) map[string]chat.Thread
}

// GetMemberDashboardQuery carries input for the dashboard projection.
type GetMemberDashboardQuery struct {
	UserID string
}

// GetMemberDashboardDeps holds dependencies for the dashboard projection.
type GetMemberDashboardDeps struct {
	AttendanceStore DashboardAttendanceStore
	PlanStore       DashboardPlanStore
	RecordStore     DashboardRecordStore
	ChatStore       DashboardChatStore
}

// MemberDashboardResult is the member home view data.
type MemberDashboardResult struct {
	UserID          string
	CurrentStreak   int
	BestStreak      int
	PresentDays     int
	LastPresent     string // YYYY-MM-DD, empty when never present
	HasPlan         bool
	PlanName        string
	FinishedCount   int
	TrainerMessages int // messages received from trainers across all threads
}

// QueryGetMemberDashboard assembles the member home view: streaks, last
// visit, assigned plan and finished-workout count.
func QueryGetMemberDashboard(ctx context.Context, query GetMemberDashboardQuery, deps GetMemberDashboardDeps) MemberDashboardResult {
	entries := deps.AttendanceStore.Entries(ctx, query.UserID)
	streak := deps.AttendanceStore.Streak(ctx, query.UserID)

	result := MemberDashboardResult{
		UserID:        query.UserID,
		CurrentStreak: streak.Current,
		BestStreak:    streak.Best,
		PresentDays:   attendance.CountPresent(entries),
		LastPresent:   attendance.LastPresentDate(entries),
	}

	if plan, ok := deps.PlanStore.PlanForMember(ctx, query.UserID); ok {
		result.HasPlan = true
		result.PlanName = plan.Name
	}

	result.FinishedCount = len(deps.RecordStore.RecordsForUser(ctx, query.UserID))

	for _, thread := range deps.ChatStore.ThreadsForMember(ctx, query.UserID) {
		for _, msg := range thread {
			if msg.SenderID != query.UserID {
				result.TrainerMessages++
			}
		}
	}

	return result
}
