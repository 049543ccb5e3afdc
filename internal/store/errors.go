package store

import (
	"errors"
)

// Error taxonomy surfaced by the store layer. Handlers map these onto
// HTTP statuses; everything not in this list is treated as a transient
// store failure.
var (
	ErrNotFound       = errors.New("record not found")
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrEmptyReason    = errors.New("reason cannot be empty")
	ErrInvalidValue   = errors.New("vote value must be +1 or -1")
	ErrNoExistingVote = errors.New("no existing vote to remove")
	ErrEmailTaken     = errors.New("email already registered")

	// ErrConflict marks a serialization failure inside a vote
	// transaction. The reputation service retries once before letting
	// it surface.
	ErrConflict = errors.New("concurrent write conflict")
)
