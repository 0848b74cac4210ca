package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// state namespaces
const (
	NamespaceAutoPilot = "autopilot"
	NamespaceMemory    = "dedup_memory"
)

// StateRepository is the key-value persistence port: one JSON document per
// namespace, last writer wins. Single active writer is assumed.
type StateRepository struct {
	db *sqlx.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sqlx.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves the stored document for a namespace, nil if absent
func (r *StateRepository) Get(ctx context.Context, namespace string) ([]byte, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM state WHERE namespace = ?", namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get state %s: %w", namespace, err)
	}
	return []byte(value), nil
}

// Set stores the document for a namespace, retrying on SQLite lock errors
func (r *StateRepository) Set(ctx context.Context, namespace string, value []byte) error {
	query := `
		INSERT INTO state (namespace, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	retrier := newLockRetrier()
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, namespace, string(value), time.Now().UTC()); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("set state %s: %w", namespace, err)}
		}
		return nil
	})
}
