package attendance

import (
	"errors"
	"sort"
	"time"
)

// DateLayout is the calendar-day key format for attendance entries.
const DateLayout = "2006-01-02"

// Attendance status constants.
const (
	StatusPresent = "present"
	StatusRest    = "rest"
)

// Domain errors
var (
	ErrEmptyDate     = errors.New("attendance date is required")
	ErrInvalidDate   = errors.New("attendance date must be YYYY-MM-DD")
	ErrInvalidStatus = errors.New("status must be present or rest")
)

// Entry marks one calendar day for one user. The date is the natural key;
// a user never has two entries for the same date.
type Entry struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Status string `json:"status"`
}

// Validate checks if the Entry has valid data.
// POST: Returns nil if valid, error otherwise
func (e *Entry) Validate() error {
	if e.Date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.Status != StatusPresent && e.Status != StatusRest {
		return ErrInvalidStatus
	}
	return nil
}

// SetEntry replaces or inserts the entry for date, keeping the list sorted by
// date ascending.
// POST: Exactly one entry exists for date, entries for other dates untouched
func SetEntry(entries []Entry, date, status string) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	for _, e := range entries {
		if e.Date != date {
			out = append(out, e)
		}
	}
	out = append(out, Entry{Date: date, Status: status})
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ClearEntry removes the entry for date, if any.
func ClearEntry(entries []Entry, date string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date != date {
			out = append(out, e)
		}
	}
	return out
}

// Streak is the per-user consecutive-day state.
// INVARIANT: Best >= Current
type Streak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// Observe installs a freshly computed current streak, never letting Best
// decrease.
func (s *Streak) Observe(current int) {
	s.Current = current
	if current > s.Best {
		s.Best = current
	}
}

// ComputeStreak derives the current streak from a user's entries: the run of
// consecutive marked calendar days ending at the most recent "present" day.
// Rest days inside the run keep it alive; an unmarked day breaks it.
// POST: Returns 0 when no day is marked present
func ComputeStreak(entries []Entry) int {
	byDate := make(map[string]string, len(entries))
	var lastPresent time.Time
	for _, e := range entries {
		day, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		byDate[e.Date] = e.Status
		if e.Status == StatusPresent && day.After(lastPresent) {
			lastPresent = day
		}
	}
	if lastPresent.IsZero() {
		return 0
	}

	streak := 0
	for day := lastPresent; ; day = day.AddDate(0, 0, -1) {
		if _, marked := byDate[day.Format(DateLayout)]; !marked {
			break
		}
		streak++
	}
	return streak
}

// CountPresent returns how many entries are marked present.
func CountPresent(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Status == StatusPresent {
			n++
		}
	}
	return n
}

// LastPresentDate returns the most recent present date, or "" when none.
func LastPresentDate(entries []Entry) string {
	last := ""
	for _, e := range entries {
		if e.Status == StatusPresent && e.Date > last {
			last = e.Date
		}
	}
	return last
}
