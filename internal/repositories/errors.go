package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services
// translate these into domain errors; callers match with errors.Is.
var (
	// ErrNotFound indicates that no record matched the lookup. For contacts
	// the lookup is always scoped by owner, so an existing record owned by a
	// different user reports ErrNotFound just like a missing one.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates a unique-constraint violation in the store
	// (username, email, or the per-user phone number index).
	ErrDuplicateKey = errors.New("duplicate key")
)
