// Package member is the typed accessor for the members, trainers,
// membership plans and payments collections.
package member

import (
	"context"

	"gymdesk/internal/adapters/storage/docstore"
	domain "gymdesk/internal/domain/member"
)

// Store persists membership records.
type Store struct {
	docs docstore.Store
}

// NewStore creates a new member Store over the document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Members returns every member.
func (s *Store) Members(ctx context.Context) []domain.Member {
	return docstore.Get(ctx, s.docs, docstore.CollectionMembers, []domain.Member{})
}

// SaveMembers fully replaces the members collection.
func (s *Store) SaveMembers(ctx context.Context, members []domain.Member) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionMembers, members)
}

// MemberByID looks up a member by id.
func (s *Store) MemberByID(ctx context.Context, id string) (domain.Member, bool) {
	for _, m := range s.Members(ctx) {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Member{}, false
}

// Trainers returns every trainer.
func (s *Store) Trainers(ctx context.Context) []domain.Trainer {
	return docstore.Get(ctx, s.docs, docstore.CollectionTrainers, []domain.Trainer{})
}

// SaveTrainers fully replaces the trainers collection.
func (s *Store) SaveTrainers(ctx context.Context, trainers []domain.Trainer) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionTrainers, trainers)
}

// MembershipPlans returns every membership plan.
func (s *Store) MembershipPlans(ctx context.Context) []domain.MembershipPlan {
	return docstore.Get(ctx, s.docs, docstore.CollectionMembershipPlans, []domain.MembershipPlan{})
}

// SaveMembershipPlans fully replaces the membership plans collection.
func (s *Store) SaveMembershipPlans(ctx context.Context, plans []domain.MembershipPlan) error {
	return docstore.Save(ctx, s.docs, docstore.CollectionMembershipPlans, plans)
}

// Payments returns every payment, append order.
func (s *Store) Payments(ctx context.Context) []domain.Payment {
	return docstore.Get(ctx, s.docs, docstore.CollectionPayments, []domain.Payment{})
}

// AppendPayment appends one payment.
func (s *Store) AppendPayment(ctx context.Context, p domain.Payment) error {
	payments := s.Payments(ctx)
	return docstore.Save(ctx, s.docs, docstore.CollectionPayments, append(payments, p))
}
