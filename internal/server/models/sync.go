// Package models defines the persisted server-side data shapes.
package models

import "time"

// Sync is one stored bookmarks blob. The server never inspects Bookmarks;
// it is ciphertext supplied by the client. ID doubles as the access
// credential and is assigned by the server only.
type Sync struct {
	ID           string
	Bookmarks    string
	LastUpdated  time.Time
	LastAccessed time.Time
}
