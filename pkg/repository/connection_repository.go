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

// ConnectionRepository handles platform connection database operations
type ConnectionRepository struct {
	db *sqlx.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *sqlx.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// connectionRow is the database representation of a platform connection
type connectionRow struct {
	Platform  string     `db:"platform"`
	Connected bool       `db:"connected"`
	Handle    string     `db:"handle"`
	LastSync  *time.Time `db:"last_sync"`
}

// Upsert stores a connection record, replacing any existing one for the platform
func (r *ConnectionRepository) Upsert(ctx context.Context, conn *domain.Connection) error {
	query := `
		INSERT INTO connections (platform, connected, handle, last_sync)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(platform) DO UPDATE SET
			connected = excluded.connected,
			handle = excluded.handle,
			last_sync = excluded.last_sync
	`
	_, err := r.db.ExecContext(ctx, query, string(conn.Platform), conn.Connected, conn.Handle, conn.LastSync)
	if err != nil {
		return fmt.Errorf("upsert connection: %w", err)
	}
	return nil
}

// Get retrieves the connection record for a platform.
// A platform never connected yields a disconnected record, not an error.
func (r *ConnectionRepository) Get(ctx context.Context, platform domain.Platform) (*domain.Connection, error) {
	var row connectionRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM connections WHERE platform = ?", string(platform))
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Connection{Platform: platform}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	return toDomainConnection(&row), nil
}

// All retrieves all connection records ordered by platform
func (r *ConnectionRepository) All(ctx context.Context) ([]*domain.Connection, error) {
	var rows []connectionRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM connections ORDER BY platform"); err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	conns := make([]*domain.Connection, len(rows))
	for i, row := range rows {
		conns[i] = toDomainConnection(&row)
	}
	return conns, nil
}

func toDomainConnection(row *connectionRow) *domain.Connection {
	return &domain.Connection{
		Platform:  domain.Platform(row.Platform),
		Connected: row.Connected,
		Handle:    row.Handle,
		LastSync:  row.LastSync,
	}
}
