// Package workout is the typed accessor for the workout plan, active
// session and workout record collections. Pure pass-through over the
// document store; business rules live in the domain and the session engine.
package workout

import (
	"context"

	"gymdesk/internal/adapters/storage/docstore"
	domain "gymdesk/internal/domain/workout"
)

// Store persists workout plans, per-user active sessions and records.
type Store struct {
	docs docstore.Store
}

// NewStore creates a new workout Store over the document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Plans returns every workout plan.
func (s *Store) Plans(ctx context.Context) []domain.Plan {
	return docstore.Get(ctx, s.docs, docstore.CollectionWorkoutPlans, []domain.Plan{})
}

// SavePlans fully replaces the plans collection.
func (s *Store) SavePlans(ctx context.Context, plans []domain.Plan) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionWorkoutPlans, plans)
}

// PlanByCode looks up a plan by its generated code.
// POST: Returns the plan and true, or zero value and false
func (s *Store) PlanByCode(ctx context.Context, code string) (domain.Plan, bool) {
	for _, p := range s.Plans(ctx) {
		if p.Code == code {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// PlanForMember returns the plan assigned to a member, if any.
func (s *Store) PlanForMember(ctx context.Context, memberID string) (domain.Plan, bool) {
	for _, p := range s.Plans(ctx) {
		if p.AssignedTo == memberID {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// Active returns a user's active session.
// POST: ok=false when the user has no session in progress
func (s *Store) Active(ctx context.Context, userID string) (domain.Session, bool) {
	return docstore.GetUserEntry(ctx, s.docs, docstore.CollectionActiveWorkouts, userID, domain.Session{})
}

// SaveActive overwrites a user's active session; nil deletes the user's
// entry, keeping the collection sparse.
func (s *Store) SaveActive(ctx context.Context, userID string, sess *domain.Session) error {
	return docstore.SaveUserEntry(ctx, s.docs, docstore.CollectionActiveWorkouts, userID, sess)
}

// Records returns every workout record, append order.
func (s *Store) Records(ctx context.Context) []domain.Record {
	return docstore.Get(ctx, s.docs, docstore.CollectionWorkoutRecords, []domain.Record{})
}

// RecordsForUser returns one user's records, append order.
func (s *Store) RecordsForUser(ctx context.Context, userID string) []domain.Record {
	var out []domain.Record
	for _, r := range s.Records(ctx) {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// AppendRecord appends one record to the append-only history.
func (s *Store) AppendRecord(ctx context.Context, rec domain.Record) error {
	records := s.Records(ctx)
	return docstore.Save(ctx, s.docs, docstore.CollectionWorkoutRecords, append(records, rec))
}

// SaveRecords fully replaces the records collection. Used only for
// annotation; exercise data is never rewritten by callers.
func (s *Store) SaveRecords(ctx context.Context, records []domain.Record) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionWorkoutRecords, records)
}
