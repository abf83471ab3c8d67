package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/common"
	"github.com/dmitrijs2005/syncmarks/internal/dbx"
	"github.com/dmitrijs2005/syncmarks/internal/logging"
	"github.com/dmitrijs2005/syncmarks/internal/netx"
	"github.com/dmitrijs2005/syncmarks/internal/server/config"
	"github.com/dmitrijs2005/syncmarks/internal/server/models"
	"github.com/dmitrijs2005/syncmarks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/syncmarks/internal/timex"
)

// timeNow is a seam for tests that need to control the clock.
var timeNow = time.Now

// NewSyncLogService tracks sync creation events per client IP and answers
// whether an IP has used up its daily creation quota. The log is an
// append-and-count structure: stale entries are pruned on every check, so
// the window rolls over at local midnight without a reset job.
type NewSyncLogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	logger      logging.Logger
}

// NewNewSyncLogService constructs a NewSyncLogService using repositories and
// server config.
func NewNewSyncLogService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *NewSyncLogService {
	return &NewSyncLogService{
		db:          db,
		repomanager: m,
		config:      cfg,
		logger:      logger.With("module", "new_sync_log_service"),
	}
}

// CreateLog appends one creation-log entry for the IPv4 address extracted
// from clientAddr. An address with no dotted-decimal IPv4 in it yields
// common.ErrClientIPEmpty.
func (s *NewSyncLogService) CreateLog(ctx context.Context, clientAddr string) error {
	clientIP := netx.ExtractIPv4(clientAddr)
	if clientIP == "" {
		s.logger.Error(ctx, "client ip address is empty", "addr", clientAddr)
		return common.ErrClientIPEmpty
	}

	repo := s.repomanager.NewSyncLogs(s.db)
	log := &models.NewSyncLog{IPAddress: clientIP, SyncCreated: timeNow()}
	if err := repo.Create(ctx, log); err != nil {
		return fmt.Errorf("error creating new sync log: %w", err)
	}
	return nil
}

// NewSyncsLimitHit reports whether the extracted client IP has already
// created DailyNewSyncsLimit or more syncs today. Entries created before
// the start of the current server-local day are pruned first, for every IP,
// inside the same transaction as the count.
func (s *NewSyncLogService) NewSyncsLimitHit(ctx context.Context, clientAddr string) (bool, error) {
	clientIP := netx.ExtractIPv4(clientAddr)
	if clientIP == "" {
		s.logger.Error(ctx, "client ip address is empty", "addr", clientAddr)
		return false, common.ErrClientIPEmpty
	}

	var count int64
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.NewSyncLogs(tx)
		if _, err := repo.DeleteCreatedBefore(ctx, timex.StartOfDay(timeNow())); err != nil {
			return fmt.Errorf("error clearing new sync logs: %w", err)
		}
		var err error
		count, err = repo.CountByIP(ctx, clientIP)
		if err != nil {
			return fmt.Errorf("error counting new sync logs: %w", err)
		}
		return nil
	}); err != nil {
		return false, err
	}

	return count >= int64(s.config.DailyNewSyncsLimit), nil
}
