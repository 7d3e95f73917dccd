package attendance_test

import (
	"testing"

	"gymdesk/internal/domain/attendance"
)

// TestEntry_Validate tests attendance entry validation.
func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   attendance.Entry
		wantErr error
	}{
		{name: "valid present", entry: attendance.Entry{Date: "2024-01-05", Status: attendance.StatusPresent}},
		{name: "valid rest", entry: attendance.Entry{Date: "2024-01-05", Status: attendance.StatusRest}},
		{name: "empty date", entry: attendance.Entry{Status: attendance.StatusPresent}, wantErr: attendance.ErrEmptyDate},
		{name: "bad date", entry: attendance.Entry{Date: "05/01/2024", Status: attendance.StatusPresent}, wantErr: attendance.ErrInvalidDate},
		{name: "bad status", entry: attendance.Entry{Date: "2024-01-05", Status: "absent"}, wantErr: attendance.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.entry.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSetEntry_ReplacesByDate tests that a second mark for the same date
// replaces, never duplicates.
func TestSetEntry_ReplacesByDate(t *testing.T) {
	entries := attendance.SetEntry(nil, "2024-01-01", attendance.StatusPresent)
	entries = attendance.SetEntry(entries, "2024-01-02", attendance.StatusPresent)
	entries = attendance.SetEntry(entries, "2024-01-01", attendance.StatusRest)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2024-01-01" || entries[0].Status != attendance.StatusRest {
		t.Errorf("expected 2024-01-01 replaced with rest, got %+v", entries[0])
	}
	if entries[1].Date != "2024-01-02" {
		t.Errorf("expected sorted order, got %+v", entries)
	}
}

// TestClearEntry tests removing a single date.
func TestClearEntry(t *testing.T) {
	entries := attendance.SetEntry(nil, "2024-01-01", attendance.StatusPresent)
	entries = attendance.SetEntry(entries, "2024-01-02", attendance.StatusPresent)
	entries = attendance.ClearEntry(entries, "2024-01-01")
	if len(entries) != 1 || entries[0].Date != "2024-01-02" {
		t.Errorf("expected only 2024-01-02 left, got %+v", entries)
	}
}

// TestComputeStreak tests the consecutive-day rule.
func TestComputeStreak(t *testing.T) {
	mark := func(entries []attendance.Entry, date, status string) []attendance.Entry {
		return attendance.SetEntry(entries, date, status)
	}

	tests := []struct {
		name    string
		entries func() []attendance.Entry
		want    int
	}{
		{name: "no entries", entries: func() []attendance.Entry { return nil }, want: 0},
		{
			name: "only rest days",
			entries: func() []attendance.Entry {
				return mark(nil, "2024-01-01", attendance.StatusRest)
			},
			want: 0,
		},
		{
			name: "three consecutive present",
			entries: func() []attendance.Entry {
				e := mark(nil, "2024-01-01", attendance.StatusPresent)
				e = mark(e, "2024-01-02", attendance.StatusPresent)
				return mark(e, "2024-01-03", attendance.StatusPresent)
			},
			want: 3,
		},
		{
			name: "rest day keeps the run alive",
			entries: func() []attendance.Entry {
				e := mark(nil, "2024-01-01", attendance.StatusPresent)
				e = mark(e, "2024-01-02", attendance.StatusRest)
				return mark(e, "2024-01-03", attendance.StatusPresent)
			},
			want: 3,
		},
		{
			name: "unmarked day breaks the run",
			entries: func() []attendance.Entry {
				e := mark(nil, "2024-01-01", attendance.StatusPresent)
				e = mark(e, "2024-01-02", attendance.StatusPresent)
				e = mark(e, "2024-01-03", attendance.StatusPresent)
				// nothing on 2024-01-04
				return mark(e, "2024-01-05", attendance.StatusPresent)
			},
			want: 1,
		},
		{
			name: "trailing rest days after last present do not count",
			entries: func() []attendance.Entry {
				e := mark(nil, "2024-01-01", attendance.StatusPresent)
				e = mark(e, "2024-01-02", attendance.StatusPresent)
				return mark(e, "2024-01-03", attendance.StatusRest)
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attendance.ComputeStreak(tt.entries()); got != tt.want {
				t.Errorf("ComputeStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestStreak_Observe tests that Best never decreases.
func TestStreak_Observe(t *testing.T) {
	var s attendance.Streak
	s.Observe(3)
	if s.Current != 3 || s.Best != 3 {
		t.Errorf("expected 3/3, got %d/%d", s.Current, s.Best)
	}
	s.Observe(1)
	if s.Current != 1 || s.Best != 3 {
		t.Errorf("expected 1/3, got %d/%d", s.Current, s.Best)
	}
	s.Observe(5)
	if s.Best != 5 {
		t.Errorf("expected best 5, got %d", s.Best)
	}
}

// TestLastPresentDate tests the most recent present lookup.
func TestLastPresentDate(t *testing.T) {
	e := attendance.SetEntry(nil, "2024-01-03", attendance.StatusRest)
	e = attendance.SetEntry(e, "2024-01-02", attendance.StatusPresent)
	if got := attendance.LastPresentDate(e); got != "2024-01-02" {
		t.Errorf("expected 2024-01-02, got %q", got)
	}
	if got := attendance.LastPresentDate(nil); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
