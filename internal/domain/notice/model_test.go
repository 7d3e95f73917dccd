package notice_test

import (
	"strings"
	"testing"

	"gymdesk/internal/domain/notice"
)

// TestAnnouncement_Validate tests announcement validation.
func TestAnnouncement_Validate(t *testing.T) {
	a := notice.Announcement{ID: "1", Title: "Holiday hours", Body: "Closed Monday"}
	if err := a.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	a.Title = ""
	if err := a.Validate(); err != notice.ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	a.Title = "x"
	a.Body = "  "
	if err := a.Validate(); err != notice.ErrEmptyBody {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

// TestAnnouncement_RenderHTML tests markdown rendering with HTML escaping.
func TestAnnouncement_RenderHTML(t *testing.T) {
	a := notice.Announcement{Title: "t", Body: "**Closed** Monday <script>alert(1)</script>"}
	if err := a.RenderHTML(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(a.BodyHTML, "<strong>Closed</strong>") {
		t.Errorf("expected bold markup, got %q", a.BodyHTML)
	}
	if strings.Contains(a.BodyHTML, "<script>") {
		t.Errorf("raw HTML must be escaped, got %q", a.BodyHTML)
	}
}

// TestDefaultSettings tests the corrupt-collection fallback value.
func TestDefaultSettings(t *testing.T) {
	s := notice.DefaultSettings()
	if s.ReminderAfterDays <= 0 {
		t.Errorf("expected positive reminder threshold, got %d", s.ReminderAfterDays)
	}
}
