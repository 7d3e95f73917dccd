package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/notice"
)

// AnnouncementStore defines the announcement persistence interface.
type AnnouncementStore interface {
	Announcements(ctx context.Context) []notice.Announcement
	SaveAnnouncements(ctx context.Context, list []notice.Announcement) error
}

// PublishAnnouncementInput carries input for publishing an announcement.
type PublishAnnouncementInput struct {
	Title     string
	Body      string // markdown
	CreatedBy string
	Pinned    bool
}

// PublishAnnouncementDeps holds dependencies for PublishAnnouncement.
type PublishAnnouncementDeps struct {
	AnnouncementStore AnnouncementStore
	GenerateID        func() string
	Now               func() time.Time
}

// ExecutePublishAnnouncement validates, renders the markdown body to HTML,
// and appends the announcement.
// PRE: Title and Body are non-empty
// POST: Announcement stored with rendered BodyHTML
func ExecutePublishAnnouncement(ctx context.Context, input PublishAnnouncementInput, deps PublishAnnouncementDeps) (notice.Announcement, error) {
	a := notice.Announcement{
		ID:        deps.GenerateID(),
		Title:     input.Title,
		Body:      input.Body,
		CreatedBy: input.CreatedBy,
		CreatedAt: deps.Now(),
		Pinned:    input.Pinned,
	}
	if err := a.Validate(); err != nil {
		return notice.Announcement{}, err
	}
	if err := a.RenderHTML(); err != nil {
		return notice.Announcement{}, err
	}

	list := append(deps.AnnouncementStore.Announcements(ctx), a)
	if err := deps.AnnouncementStore.SaveAnnouncements(ctx, list); err != nil {
		return notice.Announcement{}, err
	}

	slog.Info("notice_event", "event", "announcement_published", "id", a.ID, "pinned", a.Pinned)
	return a, nil
}
