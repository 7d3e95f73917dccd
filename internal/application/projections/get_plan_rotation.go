// Package projections contains read-only queries that assemble view data
// from the stores. Projections never write.
package projections

import (
	"context"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/workout"
)

// PlanRotationPlanStore defines the plan lookup interface for the rotation
// projection.
type PlanRotationPlanStore interface {
	PlanForMember(ctx context.Context, memberID string) (workout.Plan, bool)
}

// PlanRotationAttendanceStore defines the attendance lookup interface for
// the rotation projection.
type PlanRotationAttendanceStore interface {
	Entries(ctx context.Context, userID string) []attendance.Entry
}

// GetPlanRotationQuery carries input for the plan rotation projection.
type GetPlanRotationQuery struct {
	MemberID string
}

// GetPlanRotationDeps holds dependencies for the plan rotation projection.
type GetPlanRotationDeps struct {
	PlanStore       PlanRotationPlanStore
	AttendanceStore PlanRotationAttendanceStore
}

// PlanRotationResult describes where a member stands in their plan's
// day rotation.
type PlanRotationResult struct {
	HasPlan   bool
	PlanCode  string
	PlanName  string
	DayIndex  int    // 0-based index into the schedule
	DayNumber int    // 1-based day number for display
	Focus     string
	TotalDays int
	Completed int // present days logged so far
}

// QueryGetPlanRotation locates the member's assigned plan and derives
// today's day in the rotation from their attendance count. The rotation
// advances one day per gym visit, wrapping around the schedule, so a
// missed calendar day never skips a training day.
// POST: HasPlan is false when the member has no assigned plan
func QueryGetPlanRotation(ctx context.Context, query GetPlanRotationQuery, deps GetPlanRotationDeps) PlanRotationResult {
	plan, ok := deps.PlanStore.PlanForMember(ctx, query.MemberID)
	if !ok || len(plan.Schedule) == 0 {
		return PlanRotationResult{}
	}

	presentDays := attendance.CountPresent(deps.AttendanceStore.Entries(ctx, query.MemberID))
	idx := presentDays % len(plan.Schedule)
	day := plan.Schedule[idx]

	return PlanRotationResult{
		HasPlan:   true,
		PlanCode:  plan.Code,
		PlanName:  plan.Name,
		DayIndex:  idx,
		DayNumber: idx + 1,
		Focus:     day.Focus,
		TotalDays: len(plan.Schedule),
		Completed: presentDays,
	}
}
