package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup resolves no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a create collides with a unique
	// constraint (currently only users.email).
	ErrDuplicate = errors.New("duplicate")
)
