package models

import "time"

// Answer lookup outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
	OutcomeLive     = "live"
)

// NoEntry labels lookups that did not resolve to a table entry.
const NoEntry = "none"

// AnswerLookup is a persisted per-entry answer count by outcome.
type AnswerLookup struct {
	Entry      string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}

// LookupDelta is a pending count increment not yet persisted.
type LookupDelta struct {
	Entry   string
	Outcome string
	Count   int64
}
