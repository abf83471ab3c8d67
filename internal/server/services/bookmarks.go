// Package services contains server-side business logic. This file implements
// BookmarkService, which owns the sync record lifecycle: id generation,
// gated creation, reads, and full-blob updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/common"
	"github.com/dmitrijs2005/syncmarks/internal/logging"
	"github.com/dmitrijs2005/syncmarks/internal/server/config"
	"github.com/dmitrijs2005/syncmarks/internal/server/models"
	"github.com/dmitrijs2005/syncmarks/internal/server/repositories/repomanager"
)

// syncIDByteLength is the number of random bytes behind a sync id; hex
// encoding doubles it to the 32-character wire form.
const syncIDByteLength = 16

// newSyncID is a seam for tests that need to force id generation outcomes.
var newSyncID = func() (string, error) {
	return common.MakeRandHexString(syncIDByteLength)
}

// CreateBookmarksResult is returned by CreateBookmarks.
type CreateBookmarksResult struct {
	ID          string
	LastUpdated time.Time
}

// GetBookmarksResult is returned by GetBookmarks when a record exists.
type GetBookmarksResult struct {
	Bookmarks   string
	LastUpdated time.Time
}

// LastUpdatedResult is returned by GetLastUpdated and UpdateBookmarks when a
// record exists.
type LastUpdatedResult struct {
	LastUpdated time.Time
}

// BookmarkService provides the sync record lifecycle:
// - CreateBookmarks: gated creation of a new sync
// - GetBookmarks / GetLastUpdated: reads by sync id
// - UpdateBookmarks: atomic full replacement of the stored blob
//
// The sync id is the sole access credential; unknown ids are served as empty
// results rather than errors so they stay indistinguishable from "no data
// yet".
type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	logger      logging.Logger
	logs        *NewSyncLogService
}

// NewBookmarkService constructs a BookmarkService using repositories, server
// config, and the creation-log service used for quota enforcement.
func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger, logs *NewSyncLogService) *BookmarkService {
	return &BookmarkService{
		db:          db,
		repomanager: m,
		config:      cfg,
		logger:      logger.With("module", "bookmarks_service"),
		logs:        logs,
	}
}

// CreateBookmarks stores a new bookmarks blob and returns the generated sync
// id with its creation timestamp. Creation is gated by the offline switch,
// the payload check, the global accepting-new-syncs policy, and, when
// enabled, the per-IP daily quota. The capacity and quota checks are
// check-then-act: concurrent bursts can transiently overshoot MaxSyncs or
// DailyNewSyncsLimit.
func (s *BookmarkService) CreateBookmarks(ctx context.Context, clientAddr string, bookmarks string) (*CreateBookmarksResult, error) {
	if s.config.StatusOffline {
		return nil, common.ErrServiceOffline
	}
	if bookmarks == "" {
		return nil, common.ErrBookmarksDataNotFound
	}

	accepting, err := s.IsAcceptingNewSyncs(ctx)
	if err != nil {
		return nil, err
	}
	if !accepting {
		return nil, common.ErrNewSyncsForbidden
	}

	if s.config.DailyNewSyncsLimit > 0 {
		limitHit, err := s.logs.NewSyncsLimitHit(ctx, clientAddr)
		if err != nil {
			return nil, err
		}
		if limitHit {
			return nil, common.ErrNewSyncsLimitExceeded
		}
	}

	id, err := newSyncID()
	if err != nil || id == "" {
		s.logger.Error(ctx, "error generating sync id", "error", err)
		return nil, common.ErrSyncIDGeneration
	}

	now := timeNow()
	sync := &models.Sync{
		ID:           id,
		Bookmarks:    bookmarks,
		LastUpdated:  now,
		LastAccessed: now,
	}
	if err := s.repomanager.Syncs(s.db).Create(ctx, sync); err != nil {
		return nil, fmt.Errorf("error creating sync: %w", err)
	}

	// The sync is committed at this point; a failed log write must not fail
	// the creation response.
	if s.config.DailyNewSyncsLimit > 0 {
		if err := s.logs.CreateLog(ctx, clientAddr); err != nil {
			s.logger.Error(ctx, "error recording new sync log", "error", err)
		}
	}

	s.logger.Info(ctx, "new bookmarks sync created", "sync_id", id)
	return &CreateBookmarksResult{ID: id, LastUpdated: sync.LastUpdated}, nil
}

// GetBookmarks returns the stored blob and its last-updated timestamp for
// the given sync id. Refused while the service is marked offline. An empty
// id is a caller contract violation; an unknown id yields (nil, nil).
func (s *BookmarkService) GetBookmarks(ctx context.Context, id string) (*GetBookmarksResult, error) {
	if s.config.StatusOffline {
		return nil, common.ErrServiceOffline
	}
	if id == "" {
		s.logger.Error(ctx, "sync id not supplied")
		return nil, common.ErrSyncIDNotFound
	}

	sync, err := s.repomanager.Syncs(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding sync: %w", err)
	}

	return &GetBookmarksResult{Bookmarks: sync.Bookmarks, LastUpdated: sync.LastUpdated}, nil
}

// GetLastUpdated returns only the last-updated timestamp for the given sync
// id, as a cheap has-anything-changed poll. Same offline and id contract as
// GetBookmarks.
func (s *BookmarkService) GetLastUpdated(ctx context.Context, id string) (*LastUpdatedResult, error) {
	if s.config.StatusOffline {
		return nil, common.ErrServiceOffline
	}
	if id == "" {
		s.logger.Error(ctx, "sync id not supplied")
		return nil, common.ErrSyncIDNotFound
	}

	sync, err := s.repomanager.Syncs(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding sync: %w", err)
	}

	return &LastUpdatedResult{LastUpdated: sync.LastUpdated}, nil
}

// UpdateBookmarks replaces the stored blob for an existing sync and returns
// the new last-updated timestamp. The replacement is a single atomic
// statement keyed by id; the id itself is never written. Refused while the
// service is marked offline. An unknown id yields (nil, nil) and creates
// nothing.
func (s *BookmarkService) UpdateBookmarks(ctx context.Context, id string, bookmarks string) (*LastUpdatedResult, error) {
	if s.config.StatusOffline {
		return nil, common.ErrServiceOffline
	}
	if bookmarks == "" {
		return nil, common.ErrBookmarksDataNotFound
	}
	if id == "" {
		s.logger.Error(ctx, "sync id not supplied")
		return nil, common.ErrSyncIDNotFound
	}

	lastUpdated, err := s.repomanager.Syncs(s.db).ReplaceByID(ctx, id, bookmarks, timeNow())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating sync: %w", err)
	}

	return &LastUpdatedResult{LastUpdated: lastUpdated}, nil
}

// IsAcceptingNewSyncs reports whether the service currently admits new sync
// creations: the AllowNewSyncs flag must be on and, unless MaxSyncs is 0
// (unlimited), the current total must be below MaxSyncs. The answer is
// advisory; it is not atomic with a subsequent insert.
func (s *BookmarkService) IsAcceptingNewSyncs(ctx context.Context) (bool, error) {
	if !s.config.AllowNewSyncs {
		return false, nil
	}

	if s.config.MaxSyncs == 0 {
		return true, nil
	}

	count, err := s.repomanager.Syncs(s.db).Count(ctx)
	if err != nil {
		return false, fmt.Errorf("error counting syncs: %w", err)
	}
	return count < int64(s.config.MaxSyncs), nil
}
