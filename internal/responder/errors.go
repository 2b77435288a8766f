package responder

import "errors"

// Table and envelope construction errors.
var (
	ErrNoKeywords    = errors.New("entry has no keywords")
	ErrEmptyKeyword  = errors.New("entry has an empty keyword")
	ErrEmptyAnswer   = errors.New("entry has an empty answer")
	ErrEmptyFallback = errors.New("fallback answer is empty")
	ErrInvalidBounds = errors.New("invalid simulation bounds")
)
