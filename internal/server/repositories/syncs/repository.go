package syncs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, sync *models.Sync) error
	FindByID(ctx context.Context, id string) (*models.Sync, error)
	ReplaceByID(ctx context.Context, id string, bookmarks string, now time.Time) (time.Time, error)
	Count(ctx context.Context) (int64, error)
}
