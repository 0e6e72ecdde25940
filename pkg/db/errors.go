package db

import "errors"

// Sentinel errors returned across the storage boundary. Services and
// handlers branch on these with errors.Is; driver errors are wrapped so the
// original cause stays inspectable.
var (
	// ErrNotFound reports that a referenced employee, template, or
	// assignment id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict reports a transactional failure while replacing an
	// assignment slot. A previously occupied slot is NOT a conflict; the
	// replace path is expected.
	ErrConflict = errors.New("conflict")
)
