package notice

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Domain errors
var (
	ErrEmptyTitle = errors.New("announcement title cannot be empty")
	ErrEmptyBody  = errors.New("announcement body cannot be empty")
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Announcement is a gym-wide notice authored by staff. Body is markdown;
// BodyHTML is rendered once at publish time.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"bodyHtml,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	Pinned    bool      `json:"pinned,omitempty"`
}

// Validate checks if the Announcement has valid data.
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Body) == "" {
		return ErrEmptyBody
	}
	return nil
}

// RenderHTML converts the markdown body to HTML and stores it on the
// announcement.
// POST: BodyHTML holds escaped, rendered markup
func (a *Announcement) RenderHTML() error {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(a.Body), &buf); err != nil {
		return err
	}
	a.BodyHTML = buf.String()
	return nil
}

// Settings is the per-installation configuration blob.
type Settings struct {
	GymName           string `json:"gymName"`
	Currency          string `json:"currency"`
	ReminderAfterDays int    `json:"reminderAfterDays"`
}

// DefaultSettings is the fallback when the settings collection is missing or
// corrupt.
func DefaultSettings() Settings {
	return Settings{GymName: "Gymdesk", Currency: "USD", ReminderAfterDays: 7}
}

// Reminder logs one attendance-reminder email sent to a member.
type Reminder struct {
	ID       string    `json:"id"`
	MemberID string    `json:"memberId"`
	Email    string    `json:"email"`
	SentAt   time.Time `json:"sentAt"`
}
