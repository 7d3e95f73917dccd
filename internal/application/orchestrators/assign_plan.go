package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gymdesk/internal/domain/workout"
)

// PlanStore defines the workout plan persistence interface for assignment.
type PlanStore interface {
	Plans(ctx context.Context) []workout.Plan
	SavePlans(ctx context.Context, plans []workout.Plan) error
}

// AssignExerciseInput is one exercise prescription in a plan day.
type AssignExerciseInput struct {
	Name        string
	Sets        int
	Reps        int
	Weight      int
	RestSeconds int
}

// AssignDayInput is one day of the plan rotation.
type AssignDayInput struct {
	Focus     string
	Exercises []AssignExerciseInput
}

// AssignPlanInput carries input for the plan assignment orchestrator.
type AssignPlanInput struct {
	TrainerID string
	MemberID  string
	Name      string
	Days      []AssignDayInput
}

// AssignPlanDeps holds dependencies for AssignPlan.
type AssignPlanDeps struct {
	PlanStore  PlanStore
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteAssignPlan builds a multi-day plan with a generated code and
// assigns it to a member, replacing any plan previously assigned to them.
// PRE: Name is non-empty, at least one day, every exercise named
// POST: Exactly one plan is assigned to the member
func ExecuteAssignPlan(ctx context.Context, input AssignPlanInput, deps AssignPlanDeps) (workout.Plan, error) {
	if input.TrainerID == "" {
		return workout.Plan{}, errors.New("trainer ID is required")
	}

	code := fmt.Sprintf("WP-%.8s", strings.ReplaceAll(deps.GenerateID(), "-", ""))
	plan := workout.Plan{
		Code:       code,
		Name:       strings.TrimSpace(input.Name),
		Type:       workout.TypeMultiDay,
		TotalDays:  len(input.Days),
		AssignedTo: input.MemberID,
		CreatedBy:  input.TrainerID,
		CreatedAt:  deps.Now(),
	}
	for i, day := range input.Days {
		spec := workout.DaySpec{Day: i + 1, Focus: day.Focus}
		for j, ex := range day.Exercises {
			spec.Exercises = append(spec.Exercises, workout.ExerciseSpec{
				ID:          fmt.Sprintf("%s-d%d-e%d", code, i+1, j+1),
				Name:        strings.TrimSpace(ex.Name),
				Sets:        ex.Sets,
				Reps:        ex.Reps,
				Weight:      ex.Weight,
				RestSeconds: ex.RestSeconds,
			})
		}
		plan.Schedule = append(plan.Schedule, spec)
	}
	if err := plan.Validate(); err != nil {
		return workout.Plan{}, err
	}

	// one assigned plan per member
	plans := deps.PlanStore.Plans(ctx)
	kept := plans[:0]
	for _, p := range plans {
		if p.AssignedTo != input.MemberID {
			kept = append(kept, p)
		}
	}
	if err := deps.PlanStore.SavePlans(ctx, append(kept, plan)); err != nil {
		return workout.Plan{}, err
	}

	slog.Info("plan_event", "event", "plan_assigned", "code", plan.Code,
		"member_id", input.MemberID, "trainer_id", input.TrainerID, "days", plan.TotalDays)
	return plan, nil
}
