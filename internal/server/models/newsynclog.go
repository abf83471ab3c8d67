package models

import "time"

// NewSyncLog records one successful sync creation for per-IP daily rate
// limiting. Entries are not linked back to a particular sync.
type NewSyncLog struct {
	IPAddress   string
	SyncCreated time.Time
}
