package orchestrators_test

import (
	"context"
	"strings"
	"testing"

	"gymdesk/internal/adapters/storage/docstore"
	workoutStore "gymdesk/internal/adapters/storage/workout"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/domain/workout"
)

func validPlanInput() orchestrators.AssignPlanInput {
	return orchestrators.AssignPlanInput{
		TrainerID: "trainer-1",
		MemberID:  "member-1",
		Name:      "Hypertrophy Block",
		Days: []orchestrators.AssignDayInput{
			{Focus: "Push", Exercises: []orchestrators.AssignExerciseInput{
				{Name: "Bench Press", Sets: 3, Reps: 8, Weight: 60, RestSeconds: 90},
			}},
			{Focus: "Pull", Exercises: []orchestrators.AssignExerciseInput{
				{Name: "Barbell Row", Sets: 3, Reps: 8, Weight: 50},
			}},
		},
	}
}

func assignDeps(store *workoutStore.Store) orchestrators.AssignPlanDeps {
	return orchestrators.AssignPlanDeps{
		PlanStore:  store,
		GenerateID: func() string { return "abcd1234-0000-0000-0000-000000000000" },
		Now:        fixedNow,
	}
}

// TestExecuteAssignPlan_Valid tests plan creation with a generated code.
func TestExecuteAssignPlan_Valid(t *testing.T) {
	ctx := context.Background()
	store := workoutStore.NewStore(docstore.NewMemStore())

	plan, err := orchestrators.ExecuteAssignPlan(ctx, validPlanInput(), assignDeps(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(plan.Code, "WP-") || len(plan.Code) != 11 {
		t.Errorf("expected WP-<8 chars> code, got %q", plan.Code)
	}
	if plan.Type != workout.TypeMultiDay || plan.TotalDays != 2 {
		t.Errorf("unexpected plan shape: %+v", plan)
	}
	if plan.Schedule[1].Day != 2 || plan.Schedule[1].Focus != "Pull" {
		t.Errorf("unexpected day spec: %+v", plan.Schedule[1])
	}

	if got, ok := store.PlanForMember(ctx, "member-1"); !ok || got.Code != plan.Code {
		t.Errorf("expected plan persisted for member, got %+v ok=%v", got, ok)
	}
}

// TestExecuteAssignPlan_ReplacesPriorAssignment tests one plan per member.
func TestExecuteAssignPlan_ReplacesPriorAssignment(t *testing.T) {
	ctx := context.Background()
	store := workoutStore.NewStore(docstore.NewMemStore())

	orchestrators.ExecuteAssignPlan(ctx, validPlanInput(), assignDeps(store))

	second := validPlanInput()
	second.Name = "Strength Block"
	if _, err := orchestrators.ExecuteAssignPlan(ctx, second, assignDeps(store)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plans := store.Plans(ctx)
	count := 0
	for _, p := range plans {
		if p.AssignedTo == "member-1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one plan assigned to member-1, got %d", count)
	}
	if p, _ := store.PlanForMember(ctx, "member-1"); p.Name != "Strength Block" {
		t.Errorf("expected the replacement plan, got %q", p.Name)
	}
}

// TestExecuteAssignPlan_Validation tests rejection before any write.
func TestExecuteAssignPlan_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*orchestrators.AssignPlanInput)
	}{
		{name: "empty plan name", mutate: func(in *orchestrators.AssignPlanInput) { in.Name = "  " }},
		{name: "no days", mutate: func(in *orchestrators.AssignPlanInput) { in.Days = nil }},
		{name: "no member", mutate: func(in *orchestrators.AssignPlanInput) { in.MemberID = "" }},
		{name: "no trainer", mutate: func(in *orchestrators.AssignPlanInput) { in.TrainerID = "" }},
		{
			name: "unnamed exercise",
			mutate: func(in *orchestrators.AssignPlanInput) {
				in.Days[0].Exercises[0].Name = " "
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := workoutStore.NewStore(docstore.NewMemStore())
			input := validPlanInput()
			tt.mutate(&input)
			if _, err := orchestrators.ExecuteAssignPlan(ctx, input, assignDeps(store)); err == nil {
				t.Fatal("expected validation error")
			}
			if plans := store.Plans(ctx); len(plans) != 0 {
				t.Errorf("expected store unchanged, got %d plans", len(plans))
			}
		})
	}
}
