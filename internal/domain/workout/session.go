package workout

import (
	"errors"
	"fmt"
	"strings"
)

// Source tags where an active session came from. A stale session from one
// source is never resumed under the other.
type Source string

// Session source constants.
const (
	SourceAssigned Source = "ASSIGNED"
	SourceSelf     Source = "SELF"
)

// DefaultRestSeconds is used when a set has no usable rest time configured.
const DefaultRestSeconds = 60

// Domain errors
var (
	ErrNoExercises    = errors.New("session has no exercises")
	ErrExerciseRange  = errors.New("exercise index out of range")
	ErrSetRange       = errors.New("set index out of range")
	ErrNoPlan         = errors.New("no workout plan available")
	ErrEmptySession   = errors.New("session name cannot be empty")
	ErrNegativeActual = errors.New("actual reps and weight cannot be negative")
)

// Set is one set of an exercise within an active session. ActualReps and
// ActualWeight stay 0 until the member edits them; Completed flips only on an
// explicit toggle.
type Set struct {
	ID           string `json:"id"`
	Reps         int    `json:"reps"`
	Weight       int    `json:"weight"`
	RestSeconds  int    `json:"restTime"`
	ActualReps   int    `json:"actualReps"`
	ActualWeight int    `json:"actualWeight"`
	Completed    bool   `json:"completed"`
}

// RestOrDefault returns the configured rest time, or DefaultRestSeconds when
// it is absent or invalid.
func (s *Set) RestOrDefault() int {
	if s.RestSeconds <= 0 {
		return DefaultRestSeconds
	}
	return s.RestSeconds
}

// Exercise is one exercise within an active session.
type Exercise struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// FullyCompleted returns true only when every set is completed.
// POST: Returns false for an exercise with zero sets
func (e *Exercise) FullyCompleted() bool {
	if len(e.Sets) == 0 {
		return false
	}
	for _, s := range e.Sets {
		if !s.Completed {
			return false
		}
	}
	return true
}

// Session is the single in-progress workout for a user, exclusively owned by
// that user and overwritten atomically on every mutation. StartTime is epoch
// milliseconds; 0 means the user has not explicitly begun yet.
type Session struct {
	Source    Source     `json:"source"`
	Name      string     `json:"name"`
	Code      string     `json:"code,omitempty"`
	StartTime int64      `json:"startTime,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// NewAssignedSession builds a fresh session from one day of an assigned plan.
// PRE: plan is non-nil
// POST: Every set starts with Completed=false, ActualReps=0, ActualWeight=0
func NewAssignedSession(plan *Plan, day DaySpec) (Session, error) {
	if plan == nil {
		return Session{}, ErrNoPlan
	}
	name := plan.Name
	if day.Focus != "" {
		name = fmt.Sprintf("%s - %s", plan.Name, day.Focus)
	}
	return Session{
		Source:    SourceAssigned,
		Name:      name,
		Code:      plan.Code,
		Exercises: expandExercises(day.Exercises),
	}, nil
}

// NewSelfSession builds a fresh self-directed session from an ad-hoc list.
// PRE: name is non-empty, each exercise spec has a name
// POST: Every set starts with Completed=false, ActualReps=0, ActualWeight=0
func NewSelfSession(name string, exercises []ExerciseSpec) (Session, error) {
	if strings.TrimSpace(name) == "" {
		return Session{}, ErrEmptySession
	}
	for _, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return Session{}, ErrEmptyExerciseName
		}
	}
	return Session{
		Source:    SourceSelf,
		Name:      name,
		Exercises: expandExercises(exercises),
	}, nil
}

// expandExercises turns prescriptions into trackable exercises, one Set per
// prescribed set with deterministic ids.
func expandExercises(specs []ExerciseSpec) []Exercise {
	exercises := make([]Exercise, 0, len(specs))
	for _, spec := range specs {
		count := spec.Sets
		if count < 1 {
			count = 1
		}
		sets := make([]Set, 0, count)
		for i := 0; i < count; i++ {
			sets = append(sets, Set{
				ID:          fmt.Sprintf("%s-set-%d", spec.ID, i+1),
				Reps:        spec.Reps,
				Weight:      spec.Weight,
				RestSeconds: spec.RestSeconds,
			})
		}
		exercises = append(exercises, Exercise{Name: spec.Name, Sets: sets})
	}
	return exercises
}

// set returns a pointer to the addressed set.
func (s *Session) set(exIdx, setIdx int) (*Set, error) {
	if len(s.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	if exIdx < 0 || exIdx >= len(s.Exercises) {
		return nil, ErrExerciseRange
	}
	ex := &s.Exercises[exIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return nil, ErrSetRange
	}
	return &ex.Sets[setIdx], nil
}

// ToggleSet flips the completion flag of one set.
// POST: Returns the new completed state and, when the flip was false->true,
// the rest countdown duration to schedule; restSeconds is 0 on true->false
func (s *Session) ToggleSet(exIdx, setIdx int) (completed bool, restSeconds int, err error) {
	set, err := s.set(exIdx, setIdx)
	if err != nil {
		return false, 0, err
	}
	set.Completed = !set.Completed
	if set.Completed {
		return true, set.RestOrDefault(), nil
	}
	return false, 0, nil
}

// SetActual records the performed reps and weight for one set.
// PRE: reps and weight are non-negative
// POST: Completed flag is untouched
func (s *Session) SetActual(exIdx, setIdx, reps, weight int) error {
	if reps < 0 || weight < 0 {
		return ErrNegativeActual
	}
	set, err := s.set(exIdx, setIdx)
	if err != nil {
		return err
	}
	set.ActualReps = reps
	set.ActualWeight = weight
	return nil
}

// TotalVolume sums actualWeight x actualReps over completed sets only.
func (s *Session) TotalVolume() int {
	total := 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				total += set.ActualWeight * set.ActualReps
			}
		}
	}
	return total
}

// ProgressPercent reports fully-completed exercises over total exercises.
// POST: A session with zero exercises reports 0, never a division error
func (s *Session) ProgressPercent() int {
	if len(s.Exercises) == 0 {
		return 0
	}
	done := 0
	for i := range s.Exercises {
		if s.Exercises[i].FullyCompleted() {
			done++
		}
	}
	return done * 100 / len(s.Exercises)
}

// CompletedRecordExercises snapshots the completed work for the permanent
// record: exercises with at least one completed set, completed sets only.
func (s *Session) CompletedRecordExercises() []RecordExercise {
	out := []RecordExercise{}
	for _, ex := range s.Exercises {
		var sets []RecordSet
		for _, set := range ex.Sets {
			if set.Completed {
				sets = append(sets, RecordSet{Weight: set.ActualWeight, Reps: set.ActualReps})
			}
		}
		if len(sets) > 0 {
			out = append(out, RecordExercise{ExerciseName: ex.Name, CompletedSets: sets})
		}
	}
	return out
}

// FormatTime renders whole seconds as MM:SS. Minutes are unbounded, never
// wrapped into hours.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
