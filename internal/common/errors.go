package common

import "errors"

var (
	// ErrNotSignedIn is returned by operations that need a stored token
	// when none is present.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotFound is returned by storage lookups for missing keys.
	ErrNotFound = errors.New("not found")
)
