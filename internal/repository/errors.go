package repository

import "errors"

var (
	// ErrDuplicateEmail is returned when an insert or update violates the
	// unique index on users.email. The index is the sole source of truth for
	// duplicate detection; callers must not pre-check existence.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned by lookups when no record matches.
	ErrUserNotFound = errors.New("user not found")
)
