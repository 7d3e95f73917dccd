package member

import (
	"errors"
	"strings"
	"time"
)

// Member status constants.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Payment method constants.
const (
	MethodCash = "cash"
	MethodCard = "card"
	MethodBank = "bank"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrEmptyMemberID   = errors.New("member ID is required")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
	ErrInvalidDuration = errors.New("membership plan duration must be positive")
)

// Member is a gym member record.
type Member struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Status           string    `json:"status"`
	MembershipPlanID string    `json:"membershipPlanId,omitempty"`
	TrainerID        string    `json:"trainerId,omitempty"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// Validate checks if the Member has valid data.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// IsActive returns true when the member may train and receive reminders.
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

// Trainer is a staff record.
type Trainer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty,omitempty"`
}

// Validate checks if the Trainer has valid data.
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// MembershipPlan is a purchasable subscription tier.
type MembershipPlan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   int    `json:"priceCents"`
	DurationDays int    `json:"durationDays"`
}

// Validate checks if the MembershipPlan has valid data.
func (p *MembershipPlan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.DurationDays <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// Payment is one subscription payment by a member; bookkeeping only.
type Payment struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"memberId"`
	PlanID      string    `json:"planId,omitempty"`
	AmountCents int       `json:"amountCents"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paidAt"`
}

// Validate checks if the Payment has valid data.
func (p *Payment) Validate() error {
	if p.MemberID == "" {
		return ErrEmptyMemberID
	}
	if p.AmountCents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
