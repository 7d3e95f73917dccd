package workout

import (
	"errors"
	"strings"
	"time"
)

// Plan type constants.
const (
	TypeMultiDay = "multi_day"
)

// Domain errors
var (
	ErrEmptyPlanName     = errors.New("plan name cannot be empty")
	ErrNoDays            = errors.New("plan must have at least one day")
	ErrEmptyExerciseName = errors.New("exercise name cannot be empty")
	ErrNoAssignee        = errors.New("plan must be assigned to a member")
)

// ExerciseSpec describes one exercise prescription inside a plan day.
type ExerciseSpec struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Weight      int    `json:"weight"`
	RestSeconds int    `json:"restTime"`
}

// DaySpec is one day of a multi-day rotation.
type DaySpec struct {
	Day       int            `json:"day"`
	Focus     string         `json:"focus"`
	Exercises []ExerciseSpec `json:"exercises"`
}

// Plan is a trainer-authored workout plan assigned to a member.
// Read-only to the member; only session completion produces side effects.
type Plan struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	TotalDays  int       `json:"totalDays"`
	Schedule   []DaySpec `json:"schedule"`
	AssignedTo string    `json:"assignedTo"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks if the Plan has valid data.
// PRE: Plan struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPlanName
	}
	if len(p.Schedule) == 0 {
		return ErrNoDays
	}
	if p.AssignedTo == "" {
		return ErrNoAssignee
	}
	for _, day := range p.Schedule {
		for _, ex := range day.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return ErrEmptyExerciseName
			}
		}
	}
	return nil
}

// DayByIndex returns the schedule entry at idx.
// POST: Returns the day and true, or zero value and false when idx is out of range
func (p *Plan) DayByIndex(idx int) (DaySpec, bool) {
	if idx < 0 || idx >= len(p.Schedule) {
		return DaySpec{}, false
	}
	return p.Schedule[idx], true
}
