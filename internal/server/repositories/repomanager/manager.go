package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/syncmarks/internal/dbx"
	"github.com/dmitrijs2005/syncmarks/internal/server/repositories/newsynclogs"
	"github.com/dmitrijs2005/syncmarks/internal/server/repositories/syncs"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Syncs(db dbx.DBTX) syncs.Repository
	NewSyncLogs(db dbx.DBTX) newsynclogs.Repository
}
