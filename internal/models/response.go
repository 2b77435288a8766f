package models

import "github.com/google/uuid"

// Strategy names reported on every QueryResult.
const (
	StrategyStatic = "static"
	StrategyLive   = "live"
)

// ResponseEntry is one canned answer of the demo table. It is selected when any
// of its keywords appears in the normalized question.
type ResponseEntry struct {
	Key      string   `json:"key" yaml:"key"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Answer   string   `json:"answer" yaml:"answer"`
	Sources  []string `json:"sources" yaml:"sources"`
}

// FallbackResponse is returned when no entry matches.
type FallbackResponse struct {
	Answer  string   `json:"answer" yaml:"answer"`
	Sources []string `json:"sources" yaml:"sources"`
}

// QueryResult is the envelope handed back to the demo UI or CLI.
// SimulatedLatencyMS and SimulatedConfidence are presentation values only
// for the static strategy; the live strategy reports its measured latency
// and no confidence.
type QueryResult struct {
	ID                  uuid.UUID `json:"id"`
	Query               string    `json:"query"`
	Matched             bool      `json:"matched"`
	EntryKey            string    `json:"entry_key,omitempty"`
	Answer              string    `json:"answer"`
	Sources             []string  `json:"sources"`
	SimulatedLatencyMS  int64     `json:"simulated_latency_ms"`
	SimulatedConfidence float64   `json:"simulated_confidence"`
	DocumentsAnalyzed   int       `json:"documents_analyzed"`
	Strategy            string    `json:"strategy"`
}
