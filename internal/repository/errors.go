package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when a uniqueness constraint would be
	// violated, e.g. generating a duplicate invite code.
	ErrAlreadyExists = errors.New("entity already exists")
)
