// Package newsynclogs provides the PostgreSQL-backed repository for the
// sync creation log used by the daily per-IP quota.
package newsynclogs

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/dbx"
	"github.com/dmitrijs2005/syncmarks/internal/server/models"
)

// PostgresRepository implements creation-log storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends one creation-log entry.
func (r *PostgresRepository) Create(ctx context.Context, log *models.NewSyncLog) error {
	query := `
		INSERT INTO new_sync_logs (ip_address, sync_created)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, log.IPAddress, log.SyncCreated); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteCreatedBefore removes all entries, for any IP, created strictly
// before cutoff. Returns the number of rows removed.
func (r *PostgresRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM new_sync_logs
		WHERE sync_created < $1
	`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// CountByIP returns the number of remaining entries for the given IP.
func (r *PostgresRepository) CountByIP(ctx context.Context, ipAddress string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM new_sync_logs
		WHERE ip_address = $1
	`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, ipAddress).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
