package db

import "errors"

// Domain-level database error sentinels.
var (
	// Answer lookup errors
	ErrInvalidOutcome = errors.New("invalid answer lookup outcome")
	ErrEmptyEntry     = errors.New("answer lookup entry is empty")
)
