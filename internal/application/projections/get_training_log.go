package projections

import (
	"context"

	"gymdesk/internal/domain/workout"
)

// TrainingLogRecordStore defines the record lookup interface for the
// training log projection.
type TrainingLogRecordStore interface {
	RecordsForUser(ctx context.Context, userID string) []workout.Record
}

// GetTrainingLogQuery carries input for the training log projection.
type GetTrainingLogQuery struct {
	UserID string
}

// GetTrainingLogDeps holds dependencies for the training log projection.
type GetTrainingLogDeps struct {
	RecordStore TrainingLogRecordStore
}

// TrainingLogEntry is one finished workout in the log.
type TrainingLogEntry struct {
	Record workout.Record
	Volume int // total weight moved across completed sets
}

// TrainingLogResult carries the output of the training log projection.
type TrainingLogResult struct {
	UserID       string
	TotalRecords int
	TotalVolume  int
	Entries      []TrainingLogEntry // newest first
}

// QueryGetTrainingLog lists a member's finished workouts newest-first with
// per-workout volume.
func QueryGetTrainingLog(ctx context.Context, query GetTrainingLogQuery, deps GetTrainingLogDeps) TrainingLogResult {
	records := deps.RecordStore.RecordsForUser(ctx, query.UserID)

	result := TrainingLogResult{
		UserID:       query.UserID,
		TotalRecords: len(records),
		Entries:      make([]TrainingLogEntry, 0, len(records)),
	}

	// Records are stored in append order; walk backwards so the most
	// recent workout comes first.
	for i := len(records) - 1; i >= 0; i-- {
		volume := records[i].Volume()
		result.TotalVolume += volume
		result.Entries = append(result.Entries, TrainingLogEntry{Record: records[i], Volume: volume})
	}

	return result
}
