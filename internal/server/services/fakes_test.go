package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/syncmarks/internal/dbx"
	"github.com/dmitrijs2005/syncmarks/internal/logging"
	"github.com/dmitrijs2005/syncmarks/internal/server/models"
	newsynclogsrepo "github.com/dmitrijs2005/syncmarks/internal/server/repositories/newsynclogs"
	syncsrepo "github.com/dmitrijs2005/syncmarks/internal/server/repositories/syncs"
)

// ---- helpers ----

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeSyncsRepo struct {
	created   *models.Sync
	createErr error

	findOut *models.Sync
	findErr error

	replaceOut time.Time
	replaceErr error

	countOut    int64
	countErr    error
	countCalled bool
}

func (f *fakeSyncsRepo) Create(ctx context.Context, s *models.Sync) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = s
	return nil
}
func (f *fakeSyncsRepo) FindByID(ctx context.Context, id string) (*models.Sync, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}
func (f *fakeSyncsRepo) ReplaceByID(ctx context.Context, id string, bookmarks string, now time.Time) (time.Time, error) {
	if f.replaceErr != nil {
		return time.Time{}, f.replaceErr
	}
	return f.replaceOut, nil
}
func (f *fakeSyncsRepo) Count(ctx context.Context) (int64, error) {
	f.countCalled = true
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countOut, nil
}

// fakeLogsRepo normally answers from the canned fields; with stateful set it
// behaves like a real log instead: DeleteCreatedBefore drops old entries and
// CountByIP counts what Create appended.
type fakeLogsRepo struct {
	created   []*models.NewSyncLog
	createErr error

	deleteCutoff time.Time
	deleteN      int64
	deleteErr    error

	countOut int64
	countErr error
	countIP  string

	stateful bool
}

func (f *fakeLogsRepo) Create(ctx context.Context, log *models.NewSyncLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, log)
	return nil
}
func (f *fakeLogsRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.deleteCutoff = cutoff
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if f.stateful {
		kept := f.created[:0]
		var n int64
		for _, e := range f.created {
			if e.SyncCreated.Before(cutoff) {
				n++
				continue
			}
			kept = append(kept, e)
		}
		f.created = kept
		return n, nil
	}
	return f.deleteN, nil
}
func (f *fakeLogsRepo) CountByIP(ctx context.Context, ip string) (int64, error) {
	f.countIP = ip
	if f.countErr != nil {
		return 0, f.countErr
	}
	if f.stateful {
		var n int64
		for _, e := range f.created {
			if e.IPAddress == ip {
				n++
			}
		}
		return n, nil
	}
	return f.countOut, nil
}

type fakeRepoManager struct {
	s *fakeSyncsRepo
	l *fakeLogsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Syncs(db dbx.DBTX) syncsrepo.Repository              { return m.s }
func (m *fakeRepoManager) NewSyncLogs(db dbx.DBTX) newsynclogsrepo.Repository  { return m.l }

// newSQLMockDBWithTx returns a sqlmock DB primed for n WithTx round trips
// (Begin + Commit pairs); the fake repositories never touch the handle.
func newSQLMockDBWithTx(t *testing.T, n int) *sql.DB {
	t.Helper()
	db, mock := newSQLMockDB(t)
	for i := 0; i < n; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newSQLMockDB2WithRollback primes a sqlmock DB for one transaction that
// rolls back.
func newSQLMockDB2WithRollback(t *testing.T) *sql.DB {
	t.Helper()
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// withFixedClock pins timeNow for the duration of a test.
func withFixedClock(t *testing.T, ts time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return ts }
	t.Cleanup(func() { timeNow = orig })
}
