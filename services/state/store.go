package state

import "time"

// Store tracks listing identifiers that have already triggered an alert
type Store interface {
	// Load reads the persisted state; a missing backing file is an empty store
	Load() error

	// Has reports whether the identifier has already been alerted on
	Has(id string) bool

	// Add records an identifier with its first-seen timestamp
	Add(id string, seenAt time.Time)

	// Prune drops entries older than maxAge and returns how many were removed
	Prune(maxAge time.Duration) int

	// Save persists the state, overwriting the previous contents
	Save() error
}
