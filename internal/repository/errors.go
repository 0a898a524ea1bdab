// Package repository provides PostgreSQL persistence for exercises, users
// and workouts.
package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable is returned by every method of Unavailable.
	ErrStoreUnavailable = errors.New("store unavailable")
)
