// Package syncs provides the PostgreSQL-backed repository for stored
// bookmark syncs.
package syncs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/common"
	"github.com/dmitrijs2005/syncmarks/internal/dbx"
	"github.com/dmitrijs2005/syncmarks/internal/server/models"
)

// PostgresRepository implements sync storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new sync row. The id must already be assigned.
func (r *PostgresRepository) Create(ctx context.Context, sync *models.Sync) error {
	query := `
		INSERT INTO syncs (id, bookmarks, last_updated, last_accessed)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		sync.ID, sync.Bookmarks, sync.LastUpdated, sync.LastAccessed); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByID returns the sync row for the given id.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Sync, error) {
	query := `
		SELECT id, bookmarks, last_updated, last_accessed
		FROM syncs
		WHERE id = $1
	`
	sync := &models.Sync{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sync.ID, &sync.Bookmarks, &sync.LastUpdated, &sync.LastAccessed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return sync, nil
}

// ReplaceByID replaces the stored bookmarks blob and refreshes both
// timestamps in a single statement. The id column is never written.
// If no row matches, it returns common.ErrorNotFound.
func (r *PostgresRepository) ReplaceByID(ctx context.Context, id string, bookmarks string, now time.Time) (time.Time, error) {
	query := `
		UPDATE syncs
		SET bookmarks = $2, last_updated = $3, last_accessed = $3
		WHERE id = $1
		RETURNING last_updated
	`
	var lastUpdated time.Time
	err := r.db.QueryRowContext(ctx, query, id, bookmarks, now).Scan(&lastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, common.ErrorNotFound
		}
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	return lastUpdated, nil
}

// Count returns the total number of stored syncs.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM syncs`

	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
