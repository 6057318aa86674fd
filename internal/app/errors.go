package app

import "errors"

// Errors returned by session operations.
var (
	// ErrInvalidCommand indicates a key sequence the grammar rejects.
	ErrInvalidCommand = errors.New("invalid command sequence")

	// ErrNoSelection indicates an operation that needs an active selection.
	ErrNoSelection = errors.New("no active selection")
)
