package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/generator"
	"github.com/postpilot/postpilot/pkg/memory"
	"github.com/postpilot/postpilot/pkg/repository"
)

// errNoRetry marks generation failures the automatic retry cannot help with
var errNoRetry = errors.New("no retry")

// AutoPilot owns the recurring generation schedule. It fires a batch when
// the countdown expires, routes the result to the review queue or straight
// to the publish schedule, and rearms itself from the completion time.
// A single in-flight guard is shared by the timer and the manual trigger.
type AutoPilot struct {
	generator   Generator
	stager      Stager
	content     ContentStore
	state       StateStore
	memory      MemoryStore
	retryDelay  time.Duration
	avoidRecent int

	mu          sync.Mutex
	st          domain.AutoPilotState
	lastFailure string
	lastRun     *time.Time
	inFlight    atomic.Bool
	now         func() time.Time
}

// AutoPilotConfig holds autopilot dependencies and initial settings.
// Defaults seed the state on first run; a persisted state wins over them.
type AutoPilotConfig struct {
	Generator   Generator
	Stager      Stager
	Content     ContentStore
	State       StateStore
	Memory      MemoryStore
	RetryDelay  time.Duration
	AvoidRecent int
	Defaults    domain.AutoPilotState
}

// AutoPilotStatus is a point-in-time snapshot for the operator surface
type AutoPilotStatus struct {
	domain.AutoPilotState
	InFlight    bool       `json:"in_flight"`
	LastFailure string     `json:"last_failure,omitempty"`
	LastRun     *time.Time `json:"last_run,omitempty"`
}

// Settings are the operator-tunable knobs; nil or zero fields keep
// the current value
type Settings struct {
	Cadence          domain.Cadence
	PostingFrequency map[domain.Platform]int
	AutoApprove      *bool
}

// NewAutoPilot creates an autopilot with the provided configuration
func NewAutoPilot(cfg AutoPilotConfig) *AutoPilot {
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 3 * time.Second
	}
	if cfg.AvoidRecent == 0 {
		cfg.AvoidRecent = 20
	}
	if cfg.Defaults.IntervalHours == 0 {
		cfg.Defaults.IntervalHours = 24
	}
	if cfg.Defaults.Cadence == "" {
		cfg.Defaults.Cadence = domain.CadenceWeekly
	}

	return &AutoPilot{
		generator:   cfg.Generator,
		stager:      cfg.Stager,
		content:     cfg.Content,
		state:       cfg.State,
		memory:      cfg.Memory,
		retryDelay:  cfg.RetryDelay,
		avoidRecent: cfg.AvoidRecent,
		st:          cfg.Defaults,
		now:         time.Now,
	}
}

// Load restores autopilot state and dedup memory persisted by a previous run
func (ap *AutoPilot) Load(ctx context.Context) error {
	data, err := ap.state.Get(ctx, repository.NamespaceAutoPilot)
	if err != nil {
		return fmt.Errorf("load autopilot state: %w", err)
	}
	if data != nil {
		ap.mu.Lock()
		if err := json.Unmarshal(data, &ap.st); err != nil {
			ap.mu.Unlock()
			return fmt.Errorf("decode autopilot state: %w", err)
		}
		ap.mu.Unlock()
	}

	snap, err := ap.state.Get(ctx, repository.NamespaceMemory)
	if err != nil {
		return fmt.Errorf("load dedup memory: %w", err)
	}
	if snap != nil {
		if err := ap.memory.Restore(snap); err != nil {
			return fmt.Errorf("restore dedup memory: %w", err)
		}
	}
	return nil
}

// Enable arms the recurring generation timer. A positive intervalHours
// overrides the configured interval; the first firing is one full interval
// away. Re-enabling resets the countdown.
func (ap *AutoPilot) Enable(ctx context.Context, intervalHours int) error {
	ap.mu.Lock()
	defer ap.mu.Unlock()

	if intervalHours > 0 {
		ap.st.IntervalHours = intervalHours
	}
	ap.st.Enabled = true
	ap.st.IsScheduled = true
	next := ap.now().Add(ap.interval())
	ap.st.NextGeneration = &next

	if err := ap.persistState(ctx); err != nil {
		return err
	}
	lgr.Printf("[INFO] autopilot enabled, next generation at %s", next.Format(time.RFC3339))
	return nil
}

// Disable disarms the timer. In-flight generation is not cancelled;
// its completion notices the flag and leaves the timer alone.
func (ap *AutoPilot) Disable(ctx context.Context) error {
	ap.mu.Lock()
	defer ap.mu.Unlock()

	ap.st.Enabled = false
	ap.st.IsScheduled = false
	ap.st.NextGeneration = nil

	if err := ap.persistState(ctx); err != nil {
		return err
	}
	lgr.Printf("[INFO] autopilot disabled")
	return nil
}

// Configure updates cadence, quotas and approval mode without touching
// the timer
func (ap *AutoPilot) Configure(ctx context.Context, s Settings) error {
	ap.mu.Lock()
	defer ap.mu.Unlock()

	if s.Cadence != "" {
		switch s.Cadence {
		case domain.CadenceDaily, domain.CadenceWeekly, domain.CadenceMonthly:
			ap.st.Cadence = s.Cadence
		default:
			return fmt.Errorf("unknown cadence %q", s.Cadence)
		}
	}
	if s.PostingFrequency != nil {
		for platform, count := range s.PostingFrequency {
			if !domain.ValidPlatform(platform) {
				return fmt.Errorf("unknown platform %q", platform)
			}
			if count < 0 {
				return fmt.Errorf("negative posting frequency for %s", platform)
			}
		}
		ap.st.PostingFrequency = s.PostingFrequency
	}
	if s.AutoApprove != nil {
		ap.st.AutoApprove = *s.AutoApprove
	}

	return ap.persistState(ctx)
}

// Status returns a snapshot for the operator surface
func (ap *AutoPilot) Status() AutoPilotStatus {
	ap.mu.Lock()
	defer ap.mu.Unlock()

	st := ap.st
	if ap.st.PostingFrequency != nil {
		st.PostingFrequency = make(map[domain.Platform]int, len(ap.st.PostingFrequency))
		for k, v := range ap.st.PostingFrequency {
			st.PostingFrequency[k] = v
		}
	}
	if ap.st.NextGeneration != nil {
		next := *ap.st.NextGeneration
		st.NextGeneration = &next
	}

	return AutoPilotStatus{
		AutoPilotState: st,
		InFlight:       ap.inFlight.Load(),
		LastFailure:    ap.lastFailure,
		LastRun:        ap.lastRun,
	}
}

// Tick fires generation when the countdown has expired. Safe to call on a
// tight cadence; an expired-but-running timer is skipped, not queued.
func (ap *AutoPilot) Tick(ctx context.Context, now time.Time) {
	ap.mu.Lock()
	due := ap.st.Enabled && ap.st.IsScheduled && ap.st.NextGeneration != nil && !now.Before(*ap.st.NextGeneration)
	ap.mu.Unlock()
	if !due {
		return
	}

	if !ap.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer ap.inFlight.Store(false)

	ap.runGeneration(ctx)
}

// GenerateNow triggers an immediate batch, sharing the in-flight guard
// with the timer
func (ap *AutoPilot) GenerateNow(ctx context.Context) error {
	if !ap.inFlight.CompareAndSwap(false, true) {
		return errors.New("generation already in flight")
	}
	defer ap.inFlight.Store(false)

	lgr.Printf("[INFO] manual generation triggered")
	ap.runGeneration(ctx)
	return nil
}

// runGeneration produces one batch and routes it. Failures of the
// no-provider and empty classes get a single delayed retry; anything else
// is surfaced immediately. The timer is rearmed from the completion time
// either way, as long as the autopilot is still enabled.
func (ap *AutoPilot) runGeneration(ctx context.Context) {
	req := ap.buildRequest()

	var items []*domain.ContentItem
	var genErr error
	retrier := repeater.NewFixed(2, ap.retryDelay)
	err := retrier.Do(ctx, func() error {
		items, genErr = ap.generator.Generate(ctx, req)
		if genErr == nil {
			return nil
		}
		if gerr, ok := domain.AsGenerationError(genErr); ok && gerr.Retryable() {
			lgr.Printf("[WARN] generation attempt failed, retrying once: %v", genErr)
			return genErr
		}
		return fmt.Errorf("%w: %w", errNoRetry, genErr)
	}, errNoRetry)

	completed := ap.now()

	ap.mu.Lock()
	defer ap.mu.Unlock()

	if err != nil {
		if genErr == nil { // context cancelled before the first attempt
			genErr = err
		}
		ap.lastFailure = genErr.Error()
		lgr.Printf("[ERROR] generation failed: %v", genErr)
		ap.finishLocked(ctx, completed)
		return
	}

	// cleared before routing so a staging or storage failure survives
	// into the status
	ap.lastFailure = ""
	ap.routeLocked(ctx, items, completed)
	ap.rememberLocked(ctx, items)
	ap.finishLocked(ctx, completed)
	lgr.Printf("[INFO] generation produced %d items", len(items))
}

// buildRequest assembles per-platform counts and avoid hints
func (ap *AutoPilot) buildRequest() generator.Request {
	ap.mu.Lock()
	counts := make(map[domain.Platform]int)
	for _, platform := range domain.Platforms() {
		if n := ap.st.Quota(platform); n > 0 {
			counts[platform] = n
		}
	}
	ap.mu.Unlock()

	avoid := make(map[string][]string, len(memory.Categories()))
	for _, cat := range memory.Categories() {
		if values := ap.memory.AvoidList(cat, ap.avoidRecent); len(values) > 0 {
			avoid[string(cat)] = values
		}
	}

	return generator.Request{Counts: counts, AvoidLists: avoid}
}

// routeLocked sends the batch to review or straight to the schedule.
// Auto-approved items are spread evenly across the coming interval.
func (ap *AutoPilot) routeLocked(ctx context.Context, items []*domain.ContentItem, completed time.Time) {
	if len(items) == 0 {
		return
	}

	if !ap.st.AutoApprove {
		if err := ap.stager.Stage(ctx, items); err != nil {
			lgr.Printf("[ERROR] failed to stage items for review: %v", err)
			ap.lastFailure = err.Error()
		}
		return
	}

	step := ap.interval() / time.Duration(len(items)+1)
	for i, item := range items {
		when := completed.Add(time.Duration(i+1) * step)
		item.Status = domain.StatusScheduled
		item.ScheduledTime = &when
		item.AutoPublish = true
		if err := ap.content.CreateItem(ctx, item); err != nil {
			lgr.Printf("[ERROR] failed to schedule item %s: %v", item.ID, err)
			ap.lastFailure = err.Error()
		}
	}
}

// rememberLocked records generated values into dedup memory and persists
// the snapshot. Memory is only fed from successful batches.
func (ap *AutoPilot) rememberLocked(ctx context.Context, items []*domain.ContentItem) {
	for _, item := range items {
		ap.memory.Record(memory.CategoryTopics, item.Topic)
		for _, platform := range item.Platforms {
			switch platform {
			case domain.PlatformEmail:
				ap.memory.Record(memory.CategorySubjects, item.Topic)
			case domain.PlatformLinkedIn:
				ap.memory.Record(memory.CategoryTitles, item.Topic)
			case domain.PlatformTwitter, domain.PlatformFacebook, domain.PlatformInstagram:
				ap.memory.Record(memory.CategoryLeads, firstSentence(item.Body))
			}
		}
	}

	snap, err := ap.memory.Snapshot()
	if err != nil {
		lgr.Printf("[WARN] failed to snapshot dedup memory: %v", err)
		return
	}
	if err := ap.state.Set(ctx, repository.NamespaceMemory, snap); err != nil {
		lgr.Printf("[WARN] failed to persist dedup memory: %v", err)
	}
}

// finishLocked rearms the timer from the completion time if the autopilot
// is still enabled. Disable during a run wins over the rearm.
func (ap *AutoPilot) finishLocked(ctx context.Context, completed time.Time) {
	ap.lastRun = &completed

	if !ap.st.Enabled {
		return
	}

	next := completed.Add(ap.interval())
	ap.st.IsScheduled = true
	ap.st.NextGeneration = &next
	if err := ap.persistState(ctx); err != nil {
		lgr.Printf("[WARN] failed to persist autopilot state: %v", err)
	}
	lgr.Printf("[INFO] next generation at %s", next.Format(time.RFC3339))
}

func (ap *AutoPilot) interval() time.Duration {
	return time.Duration(ap.st.IntervalHours) * time.Hour
}

// persistState writes the current state; callers hold the mutex
func (ap *AutoPilot) persistState(ctx context.Context) error {
	data, err := json.Marshal(ap.st)
	if err != nil {
		return fmt.Errorf("encode autopilot state: %w", err)
	}
	if err := ap.state.Set(ctx, repository.NamespaceAutoPilot, data); err != nil {
		return fmt.Errorf("persist autopilot state: %w", err)
	}
	return nil
}

// firstSentence extracts the opening line of a post body for lead dedup
func firstSentence(body string) string {
	body = strings.TrimSpace(body)
	for i, r := range body {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			return strings.TrimSpace(body[:i+1])
		}
	}
	return body
}
