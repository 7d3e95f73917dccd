package orchestrators

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain/workout"
)

// RecordStore defines the workout record persistence interface for
// annotation.
type RecordStore interface {
	Records(ctx context.Context) []workout.Record
	SaveRecords(ctx context.Context, records []workout.Record) error
}

// AnnotateRecordInput carries input for record annotation.
type AnnotateRecordInput struct {
	UserID   string
	RecordID string
	Notes    string
}

// AnnotateRecordDeps holds dependencies for AnnotateRecord.
type AnnotateRecordDeps struct {
	RecordStore RecordStore
	Now         func() time.Time
}

// ExecuteAnnotateRecord sets a member's notes on one of their historical
// records. Exercise data is immutable; only the annotation changes.
// PRE: The record exists and belongs to the user
// POST: MemberNotes and NotesSavedAt updated, all other fields untouched
func ExecuteAnnotateRecord(ctx context.Context, input AnnotateRecordInput, deps AnnotateRecordDeps) error {
	if input.RecordID == "" {
		return errors.New("record ID is required")
	}

	records := deps.RecordStore.Records(ctx)
	for i := range records {
		if records[i].ID != input.RecordID {
			continue
		}
		if records[i].UserID != input.UserID {
			return workout.ErrNotRecordOwner
		}
		records[i].Annotate(input.Notes, deps.Now())
		return deps.RecordStore.SaveRecords(ctx, records)
	}
	return workout.ErrRecordNotFound
}
