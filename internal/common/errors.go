// Package common defines shared constants and sentinel errors used across
// the syncmarks server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Availability errors.
	ErrServiceOffline = errors.New("service is offline")

	// Create gate errors.
	ErrNewSyncsForbidden     = errors.New("not accepting new syncs")
	ErrNewSyncsLimitExceeded = errors.New("daily new syncs limit exceeded")

	// Request contract errors.
	ErrBookmarksDataNotFound = errors.New("bookmarks data not found")
	ErrSyncIDNotFound        = errors.New("sync id not found")
	ErrClientIPEmpty         = errors.New("client ip address is empty")

	// Sync id generation failure (CSPRNG unavailable).
	ErrSyncIDGeneration = errors.New("error generating sync id")
)
