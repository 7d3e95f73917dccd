package workout

import (
	"errors"
	"time"
)

// Record annotation errors.
var (
	ErrRecordNotFound = errors.New("workout record not found")
	ErrNotRecordOwner = errors.New("record belongs to another member")
)

// RecordSet is one completed set inside a historical record.
type RecordSet struct {
	Weight int `json:"weight"`
	Reps   int `json:"reps"`
}

// RecordExercise groups the completed sets of one exercise.
type RecordExercise struct {
	ExerciseName  string      `json:"exerciseName"`
	CompletedSets []RecordSet `json:"completedSets"`
}

// Record is the immutable historical artifact produced when a session
// finishes. Exercise data is never rewritten; the member may only annotate.
type Record struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"userId"`
	Date               string           `json:"date"` // ISO-8601
	RoutineName        string           `json:"routineName"`
	Duration           string           `json:"duration"` // MM:SS
	CompletedExercises []RecordExercise `json:"completedExercises"`
	MemberNotes        string           `json:"memberNotes,omitempty"`
	NotesSavedAt       string           `json:"notesSavedAt,omitempty"`
}

// Volume sums weight x reps across all completed sets of the record.
func (r *Record) Volume() int {
	total := 0
	for _, ex := range r.CompletedExercises {
		for _, set := range ex.CompletedSets {
			total += set.Weight * set.Reps
		}
	}
	return total
}

// Annotate sets the member's free-text notes without touching exercise data.
// POST: MemberNotes and NotesSavedAt are updated, everything else untouched
func (r *Record) Annotate(notes string, at time.Time) {
	r.MemberNotes = notes
	r.NotesSavedAt = at.Format(time.RFC3339)
}
