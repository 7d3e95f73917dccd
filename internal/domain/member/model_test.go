package member_test

import (
	"testing"

	"gymdesk/internal/domain/member"
)

// TestMember_Validate tests member validation and status.
func TestMember_Validate(t *testing.T) {
	m := member.Member{ID: "1", Name: "Ana", Status: member.StatusActive}
	if err := m.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !m.IsActive() {
		t.Error("expected active member")
	}
	m.Name = "  "
	if err := m.Validate(); err != member.ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

// TestPayment_Validate tests payment validation.
func TestPayment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payment member.Payment
		wantErr error
	}{
		{name: "valid", payment: member.Payment{ID: "p1", MemberID: "m1", AmountCents: 4500, Method: member.MethodCard}},
		{name: "no member", payment: member.Payment{ID: "p2", AmountCents: 4500}, wantErr: member.ErrEmptyMemberID},
		{name: "zero amount", payment: member.Payment{ID: "p3", MemberID: "m1"}, wantErr: member.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.payment.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestMembershipPlan_Validate tests plan validation.
func TestMembershipPlan_Validate(t *testing.T) {
	p := member.MembershipPlan{ID: "mp1", Name: "Monthly", PriceCents: 5900, DurationDays: 30}
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	p.DurationDays = 0
	if err := p.Validate(); err != member.ErrInvalidDuration {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}
