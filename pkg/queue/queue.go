// Package queue implements the human review queue for generated content.
// Items staged here wait for an operator decision; nothing in the queue
// expires or advances on its own.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/generator"
	"github.com/postpilot/postpilot/pkg/memory"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/regenerator.go -pkg mocks -skip-ensure -fmt goimports . Regenerator
//go:generate moq -out mocks/avoid_lister.go -pkg mocks -skip-ensure -fmt goimports . AvoidLister

// Store is the persistence surface the queue needs
type Store interface {
	CreateItem(ctx context.Context, item *domain.ContentItem) error
	GetItem(ctx context.Context, id string) (*domain.ContentItem, error)
	ListItems(ctx context.Context, status domain.Status, limit int) ([]*domain.ContentItem, error)
	UpdateItem(ctx context.Context, item *domain.ContentItem) error
	DeleteItem(ctx context.Context, id string) error
}

// Regenerator produces a fresh take on a staged item
type Regenerator interface {
	Generate(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error)
}

// AvoidLister reports recently used values per dedup category
type AvoidLister interface {
	AvoidList(category memory.Category, recentN int) []string
}

// Queue manages items awaiting operator review. All state lives in the
// store; the queue itself is stateless and safe for concurrent use.
type Queue struct {
	store       Store
	regenerator Regenerator
	avoid       AvoidLister
	avoidRecent int
	now         func() time.Time
}

// Config holds queue dependencies
type Config struct {
	Store       Store
	Regenerator Regenerator
	AvoidLister AvoidLister
	AvoidRecent int // how many recent values per category to pass on regenerate
}

// New creates a review queue with the provided configuration
func New(cfg Config) *Queue {
	return &Queue{
		store:       cfg.Store,
		regenerator: cfg.Regenerator,
		avoid:       cfg.AvoidLister,
		avoidRecent: cfg.AvoidRecent,
		now:         time.Now,
	}
}

// Stage puts items into the queue with pending approval status.
// Items are persisted one by one; the first storage error aborts the batch.
func (q *Queue) Stage(ctx context.Context, items []*domain.ContentItem) error {
	for _, item := range items {
		item.Status = domain.StatusPendingApproval
		if err := q.store.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("stage item %s: %w", item.ID, err)
		}
	}
	if len(items) > 0 {
		lgr.Printf("[INFO] staged %d items for review", len(items))
	}
	return nil
}

// List returns all items currently awaiting review
func (q *Queue) List(ctx context.Context) ([]*domain.ContentItem, error) {
	items, err := q.store.ListItems(ctx, domain.StatusPendingApproval, 0)
	if err != nil {
		return nil, fmt.Errorf("list review queue: %w", err)
	}
	return items, nil
}

// Approve moves a staged item to the publish schedule. A nil scheduledTime
// schedules the item for immediate dispatch on the next poll cycle.
func (q *Queue) Approve(ctx context.Context, id string, scheduledTime *time.Time) error {
	item, err := q.staged(ctx, id)
	if err != nil {
		return err
	}

	when := q.now()
	if scheduledTime != nil {
		when = *scheduledTime
	}
	item.Status = domain.StatusScheduled
	item.ScheduledTime = &when
	item.AutoPublish = true
	item.RetryCount = 0
	item.LastError = ""

	if err := q.store.UpdateItem(ctx, item); err != nil {
		return fmt.Errorf("approve item %s: %w", id, err)
	}
	lgr.Printf("[INFO] approved item %s, scheduled for %s", id, when.Format(time.RFC3339))
	return nil
}

// Reject removes a staged item from the queue and the store
func (q *Queue) Reject(ctx context.Context, id string) error {
	if _, err := q.staged(ctx, id); err != nil {
		return err
	}
	if err := q.store.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("reject item %s: %w", id, err)
	}
	lgr.Printf("[INFO] rejected item %s", id)
	return nil
}

// ApproveAll approves every item staged at the moment of the call.
// Items staged while the batch runs are not picked up. Per-item failures
// are collected and do not stop the batch.
func (q *Queue) ApproveAll(ctx context.Context) (int, error) {
	items, err := q.List(ctx)
	if err != nil {
		return 0, err
	}

	approved := 0
	var errs []error
	for _, item := range items {
		if err := q.Approve(ctx, item.ID, nil); err != nil {
			errs = append(errs, err)
			continue
		}
		approved++
	}
	if len(errs) > 0 {
		return approved, fmt.Errorf("approve all: %w", errors.Join(errs...))
	}
	return approved, nil
}

// RejectAll rejects every item staged at the moment of the call
func (q *Queue) RejectAll(ctx context.Context) (int, error) {
	items, err := q.List(ctx)
	if err != nil {
		return 0, err
	}

	rejected := 0
	var errs []error
	for _, item := range items {
		if err := q.Reject(ctx, item.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		rejected++
	}
	if len(errs) > 0 {
		return rejected, fmt.Errorf("reject all: %w", errors.Join(errs...))
	}
	return rejected, nil
}

// Edit applies an operator patch to a staged item
func (q *Queue) Edit(ctx context.Context, id string, patch domain.ContentPatch) (*domain.ContentItem, error) {
	item, err := q.staged(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	if err := q.store.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("edit item %s: %w", id, err)
	}
	return item, nil
}

// Regenerate replaces the text of a staged item with a fresh generator take.
// The item keeps its ID, platforms and place in the queue.
func (q *Queue) Regenerate(ctx context.Context, id string) (*domain.ContentItem, error) {
	item, err := q.staged(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(item.Platforms) == 0 {
		return nil, fmt.Errorf("item %s has no platforms", id)
	}

	req := generator.Request{
		Counts:     map[domain.Platform]int{item.Platforms[0]: 1},
		AvoidLists: q.avoidLists(),
	}
	fresh, err := q.regenerator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("regenerate item %s: %w", id, err)
	}
	if len(fresh) == 0 {
		return nil, fmt.Errorf("regenerate item %s: generator returned nothing", id)
	}

	item.Topic = fresh[0].Topic
	item.Body = fresh[0].Body
	item.MediaRef = fresh[0].MediaRef
	if err := q.store.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("regenerate item %s: %w", id, err)
	}
	lgr.Printf("[INFO] regenerated item %s", id)
	return item, nil
}

// staged fetches an item and verifies it is actually in the queue
func (q *Queue) staged(ctx context.Context, id string) (*domain.ContentItem, error) {
	item, err := q.store.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	if item.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("item %s is not awaiting review (status %s)", id, item.Status)
	}
	return item, nil
}

func (q *Queue) avoidLists() map[string][]string {
	if q.avoid == nil {
		return nil
	}
	lists := make(map[string][]string, len(memory.Categories()))
	for _, cat := range memory.Categories() {
		if values := q.avoid.AvoidList(cat, q.avoidRecent); len(values) > 0 {
			lists[string(cat)] = values
		}
	}
	return lists
}
