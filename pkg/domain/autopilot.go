package domain

import "time"

// Cadence describes the posting cadence the quotas apply to.
// It drives quota math only, not the timer.
type Cadence string

// posting cadences
const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// AutoPilotState holds the recurring generation configuration and timer state
type AutoPilotState struct {
	Enabled          bool             `json:"enabled"`
	Cadence          Cadence          `json:"cadence"`
	PostingFrequency map[Platform]int `json:"posting_frequency"`
	AutoApprove      bool             `json:"auto_approve"`
	IsScheduled      bool             `json:"is_scheduled"`
	NextGeneration   *time.Time       `json:"next_generation,omitempty"` // present iff IsScheduled
	IntervalHours    int              `json:"interval_hours"`
}

// Quota returns the per-trigger batch size for a platform, zero if unset
func (s *AutoPilotState) Quota(p Platform) int {
	if s.PostingFrequency == nil {
		return 0
	}
	return s.PostingFrequency[p]
}

// Connection represents the advisory connected state of one platform
type Connection struct {
	Platform  Platform   `json:"platform"`
	Connected bool       `json:"connected"`
	Handle    string     `json:"handle,omitempty"`
	LastSync  *time.Time `json:"last_sync,omitempty"`
}
