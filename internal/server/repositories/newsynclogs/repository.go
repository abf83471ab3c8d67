package newsynclogs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, log *models.NewSyncLog) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountByIP(ctx context.Context, ipAddress string) (int64, error)
}
