package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/postpilot/postpilot/pkg/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// ContentRepository handles content item database operations
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// contentRow is the database representation of a content item
type contentRow struct {
	ID            string       `db:"id"`
	Platforms     platformsSQL `db:"platforms"`
	Topic         string       `db:"topic"`
	Body          string       `db:"body"`
	MediaRef      string       `db:"media_ref"`
	ScheduledTime *time.Time   `db:"scheduled_time"`
	Status        string       `db:"status"`
	AutoPublish   bool         `db:"auto_publish"`
	RetryCount    int          `db:"retry_count"`
	LastError     string       `db:"last_error"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

// CreateItem inserts a new content item, retrying on SQLite lock errors
func (r *ContentRepository) CreateItem(ctx context.Context, item *domain.ContentItem) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	row := toContentRow(item)
	query := `
		INSERT INTO content_items
			(id, platforms, topic, body, media_ref, scheduled_time, status, auto_publish, retry_count, last_error, created_at, updated_at)
		VALUES
			(:id, :platforms, :topic, :body, :media_ref, :scheduled_time, :status, :auto_publish, :retry_count, :last_error, :created_at, :updated_at)
	`

	retrier := newLockRetrier()
	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create content item: %w", err)}
		}
		return nil
	})
}

// GetItem retrieves a content item by ID
func (r *ContentRepository) GetItem(ctx context.Context, id string) (*domain.ContentItem, error) {
	var row contentRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM content_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content item %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get content item: %w", err)
	}
	return toDomainContent(&row), nil
}

// ListItems retrieves content items, optionally filtered by status, newest first
func (r *ContentRepository) ListItems(ctx context.Context, status domain.Status, limit int) ([]*domain.ContentItem, error) {
	query := "SELECT * FROM content_items"
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []contentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}

	items := make([]*domain.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = toDomainContent(&row)
	}
	return items, nil
}

// GetDueItems retrieves scheduled auto-publish items whose scheduled time has passed.
// The result is a snapshot: status changes made while a poll cycle runs do not
// feed back into the same cycle.
func (r *ContentRepository) GetDueItems(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
	query := `
		SELECT * FROM content_items
		WHERE status = ? AND auto_publish = 1 AND scheduled_time IS NOT NULL AND scheduled_time <= ?
		ORDER BY scheduled_time ASC
	`
	var rows []contentRow
	if err := r.db.SelectContext(ctx, &rows, query, string(domain.StatusScheduled), now.UTC()); err != nil {
		return nil, fmt.Errorf("get due items: %w", err)
	}

	items := make([]*domain.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = toDomainContent(&row)
	}
	return items, nil
}

// UpdateItem persists the mutable fields of a content item
func (r *ContentRepository) UpdateItem(ctx context.Context, item *domain.ContentItem) error {
	item.UpdatedAt = time.Now().UTC()
	row := toContentRow(item)

	query := `
		UPDATE content_items
		SET platforms = :platforms, topic = :topic, body = :body, media_ref = :media_ref,
		    scheduled_time = :scheduled_time, status = :status, auto_publish = :auto_publish,
		    retry_count = :retry_count, last_error = :last_error, updated_at = :updated_at
		WHERE id = :id
	`

	retrier := newLockRetrier()
	return retrier.Do(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update content item: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("update content item rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("content item %s: %w", item.ID, ErrNotFound)}
		}
		return nil
	})
}

// UpdateDispatchResult records the outcome of a publish attempt
func (r *ContentRepository) UpdateDispatchResult(ctx context.Context, id string, status domain.Status, retryCount int, lastError string) error {
	query := `
		UPDATE content_items
		SET status = ?, retry_count = ?, last_error = ?, updated_at = ?
		WHERE id = ?
	`

	retrier := newLockRetrier()
	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, string(status), retryCount, lastError, time.Now().UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update dispatch result: %w", err)}
		}
		return nil
	})
}

// DeleteItem removes a content item
func (r *ContentRepository) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM content_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete content item rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("content item %s: %w", id, ErrNotFound)
	}
	return nil
}

func toContentRow(item *domain.ContentItem) *contentRow {
	platforms := make(platformsSQL, len(item.Platforms))
	for i, p := range item.Platforms {
		platforms[i] = string(p)
	}
	return &contentRow{
		ID:            item.ID,
		Platforms:     platforms,
		Topic:         item.Topic,
		Body:          item.Body,
		MediaRef:      item.MediaRef,
		ScheduledTime: item.ScheduledTime,
		Status:        string(item.Status),
		AutoPublish:   item.AutoPublish,
		RetryCount:    item.RetryCount,
		LastError:     item.LastError,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func toDomainContent(row *contentRow) *domain.ContentItem {
	platforms := make([]domain.Platform, len(row.Platforms))
	for i, p := range row.Platforms {
		platforms[i] = domain.Platform(p)
	}
	return &domain.ContentItem{
		ID:            row.ID,
		Platforms:     platforms,
		Topic:         row.Topic,
		Body:          row.Body,
		MediaRef:      row.MediaRef,
		ScheduledTime: row.ScheduledTime,
		Status:        domain.Status(row.Status),
		AutoPublish:   row.AutoPublish,
		RetryCount:    row.RetryCount,
		LastError:     row.LastError,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
