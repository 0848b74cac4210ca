// Package scheduler drives the content lifecycle: the autopilot fires
// recurring generation batches and the dispatcher delivers scheduled items
// to their platforms. A single orchestrator owns both loops.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/generator"
	"github.com/postpilot/postpilot/pkg/memory"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/stager.go -pkg mocks -skip-ensure -fmt goimports . Stager
//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore
//go:generate moq -out mocks/state_store.go -pkg mocks -skip-ensure -fmt goimports . StateStore
//go:generate moq -out mocks/connection_store.go -pkg mocks -skip-ensure -fmt goimports . ConnectionStore
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher
//go:generate moq -out mocks/memory_store.go -pkg mocks -skip-ensure -fmt goimports . MemoryStore

// Generator produces content batches from per-platform counts and avoid hints
type Generator interface {
	Generate(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error)
}

// Stager hands generated items to the human review queue
type Stager interface {
	Stage(ctx context.Context, items []*domain.ContentItem) error
}

// ContentStore is the content persistence surface the lifecycle needs
type ContentStore interface {
	CreateItem(ctx context.Context, item *domain.ContentItem) error
	GetDueItems(ctx context.Context, now time.Time) ([]*domain.ContentItem, error)
	UpdateDispatchResult(ctx context.Context, id string, status domain.Status, retryCount int, lastError string) error
}

// StateStore persists namespaced state blobs across restarts
type StateStore interface {
	Get(ctx context.Context, namespace string) ([]byte, error)
	Set(ctx context.Context, namespace string, value []byte) error
}

// ConnectionStore reports platform connection status
type ConnectionStore interface {
	Get(ctx context.Context, platform domain.Platform) (*domain.Connection, error)
}

// Publisher delivers one item to one connected platform
type Publisher interface {
	Publish(ctx context.Context, item *domain.ContentItem, conn *domain.Connection) error
}

// MemoryStore is the dedup memory surface the autopilot records into
type MemoryStore interface {
	Record(category memory.Category, value string)
	AvoidList(category memory.Category, recentN int) []string
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

// Scheduler runs the autopilot countdown and the dispatch poll loop
type Scheduler struct {
	autopilot    *AutoPilot
	dispatcher   *Dispatcher
	tickInterval time.Duration
	pollInterval time.Duration
	wg           sync.WaitGroup
	cancel       context.CancelFunc
}

// Config holds orchestrator configuration
type Config struct {
	TickInterval time.Duration
	PollInterval time.Duration
}

// NewScheduler creates the lifecycle orchestrator
func NewScheduler(autopilot *AutoPilot, dispatcher *Dispatcher, cfg Config) *Scheduler {
	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Minute
	}

	return &Scheduler{
		autopilot:    autopilot,
		dispatcher:   dispatcher,
		tickInterval: cfg.TickInterval,
		pollInterval: cfg.PollInterval,
	}
}

// Start begins the tick and poll loops
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.tickWorker(ctx)

	s.wg.Add(1)
	go s.pollWorker(ctx)

	lgr.Printf("[INFO] scheduler started with tick interval %v, poll interval %v", s.tickInterval, s.pollInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// tickWorker drives the generation countdown. Tick calls are sequential,
// so a firing in one tick can never race the next.
func (s *Scheduler) tickWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.autopilot.Tick(ctx, time.Now())
		}
	}
}

// pollWorker drives the publish dispatcher
func (s *Scheduler) pollWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// run immediately on start to pick up items due while we were down
	s.dispatcher.PollCycle(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatcher.PollCycle(ctx, time.Now())
		}
	}
}
