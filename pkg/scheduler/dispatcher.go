package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/postpilot/postpilot/pkg/domain"
)

// Dispatcher delivers scheduled items to their platforms. One poll cycle
// selects everything due at its start and advances each item exactly once;
// items that fail stay scheduled and are retried by a later cycle.
type Dispatcher struct {
	content     ContentStore
	connections ConnectionStore
	publisher   Publisher
	maxRetries  int
	maxWorkers  int

	mu        sync.Mutex
	lastPoll  *time.Time
	published int
	failed    int
}

// DispatcherConfig holds dispatcher dependencies
type DispatcherConfig struct {
	Content     ContentStore
	Connections ConnectionStore
	Publisher   Publisher
	MaxRetries  int // delivery attempts before an item is demoted to draft
	MaxWorkers  int // items delivered concurrently within one cycle
}

// DispatcherStats is a counters snapshot for the operator surface
type DispatcherStats struct {
	LastPoll  *time.Time `json:"last_poll,omitempty"`
	Published int        `json:"published"`
	Failed    int        `json:"failed"`
}

// NewDispatcher creates a dispatcher with the provided configuration
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}

	return &Dispatcher{
		content:     cfg.Content,
		connections: cfg.Connections,
		publisher:   cfg.Publisher,
		maxRetries:  cfg.MaxRetries,
		maxWorkers:  cfg.MaxWorkers,
	}
}

// PollCycle runs one dispatch pass over items due at now
func (d *Dispatcher) PollCycle(ctx context.Context, now time.Time) {
	items, err := d.content.GetDueItems(ctx, now)
	if err != nil {
		lgr.Printf("[ERROR] failed to get due items: %v", err)
		return
	}

	d.mu.Lock()
	d.lastPoll = &now
	d.mu.Unlock()

	if len(items) == 0 {
		return
	}
	lgr.Printf("[INFO] dispatching %d due items", len(items))

	// items are independent; platforms within one item stay sequential
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.maxWorkers)
	for _, item := range items {
		g.Go(func() error {
			d.dispatch(ctx, item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] dispatch cycle error: %v", err)
	}
}

// Stats returns dispatch counters since startup
func (d *Dispatcher) Stats() DispatcherStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DispatcherStats{LastPoll: d.lastPoll, Published: d.published, Failed: d.failed}
}

// dispatch attempts every platform of one item in order. All platforms
// succeeding publishes the item; any failure counts against the whole item,
// partial successes are not tracked.
func (d *Dispatcher) dispatch(ctx context.Context, item *domain.ContentItem) {
	var errs []string
	for _, platform := range item.Platforms {
		if err := d.deliver(ctx, item, platform); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) == 0 {
		if err := d.content.UpdateDispatchResult(ctx, item.ID, domain.StatusPublished, item.RetryCount, ""); err != nil {
			lgr.Printf("[ERROR] failed to mark item %s published: %v", item.ID, err)
			return
		}
		d.mu.Lock()
		d.published++
		d.mu.Unlock()
		lgr.Printf("[INFO] published item %s to %d platforms", item.ID, len(item.Platforms))
		return
	}

	retryCount := item.RetryCount + 1
	status := domain.StatusScheduled
	if retryCount >= d.maxRetries {
		status = domain.StatusDraft
		lgr.Printf("[WARN] item %s exhausted %d delivery attempts, demoting to draft", item.ID, retryCount)
	}

	lastError := strings.Join(errs, "; ")
	if err := d.content.UpdateDispatchResult(ctx, item.ID, status, retryCount, lastError); err != nil {
		lgr.Printf("[ERROR] failed to record dispatch failure for item %s: %v", item.ID, err)
		return
	}
	d.mu.Lock()
	d.failed++
	d.mu.Unlock()
	lgr.Printf("[WARN] item %s delivery failed (attempt %d): %s", item.ID, retryCount, lastError)
}

// deliver publishes to a single platform. A disconnected platform is a
// failure without an external call.
func (d *Dispatcher) deliver(ctx context.Context, item *domain.ContentItem, platform domain.Platform) error {
	conn, err := d.connections.Get(ctx, platform)
	if err != nil {
		return &domain.PlatformError{Platform: platform, Cause: fmt.Errorf("connection lookup: %w", err)}
	}
	if !conn.Connected {
		return &domain.PlatformError{Platform: platform, Cause: domain.ErrNotConnected}
	}

	if err := d.publisher.Publish(ctx, item, conn); err != nil {
		var perr *domain.PlatformError
		if errors.As(err, &perr) {
			return perr
		}
		return &domain.PlatformError{Platform: platform, Cause: err}
	}
	return nil
}
