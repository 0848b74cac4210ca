package domain

import "time"

// Status represents the lifecycle state of a content item
type Status string

// content item lifecycle states
const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusScheduled       Status = "scheduled"
	StatusPublished       Status = "published"
)

// Platform identifies a publishing destination
type Platform string

// supported platforms
const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformEmail     Platform = "email"
)

// Platforms lists all supported platforms in a stable order
func Platforms() []Platform {
	return []Platform{PlatformLinkedIn, PlatformTwitter, PlatformFacebook, PlatformInstagram, PlatformEmail}
}

// ValidPlatform reports whether p is one of the supported platforms
func ValidPlatform(p Platform) bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// ContentItem represents a unit of content targeted at one or more platforms.
// Most items carry a single platform; cross-posts list several, and a publish
// cycle attempts them in order.
type ContentItem struct {
	ID            string
	Platforms     []Platform
	Topic         string
	Body          string
	MediaRef      string
	ScheduledTime *time.Time // required once status is scheduled or later
	Status        Status
	AutoPublish   bool
	RetryCount    int
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ContentPatch holds optional edits applied to a staged or draft item.
// Nil fields are left unchanged.
type ContentPatch struct {
	Topic         *string
	Body          *string
	MediaRef      *string
	ScheduledTime *time.Time
}

// Apply copies non-nil patch fields onto the item
func (p ContentPatch) Apply(item *ContentItem) {
	if p.Topic != nil {
		item.Topic = *p.Topic
	}
	if p.Body != nil {
		item.Body = *p.Body
	}
	if p.MediaRef != nil {
		item.MediaRef = *p.MediaRef
	}
	if p.ScheduledTime != nil {
		t := *p.ScheduledTime
		item.ScheduledTime = &t
	}
}
