package responder

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"legaldemo/internal/models"
)

// Bounds are the presentation ranges for the simulated latency and
// confidence. They carry no statistical meaning.
type Bounds struct {
	MinLatency    time.Duration
	MaxLatency    time.Duration
	MinConfidence float64
	MaxConfidence float64
}

// DefaultBounds returns the ranges used by the sales demo.
func DefaultBounds() Bounds {
	return Bounds{
		MinLatency:    300 * time.Millisecond,
		MaxLatency:    2 * time.Second,
		MinConfidence: 0.85,
		MaxConfidence: 0.99,
	}
}

// Validate reports whether the bounds describe non-empty, ordered ranges
// with confidence inside [0, 1]. NaN confidence bounds are rejected.
func (b Bounds) Validate() error {
	if b.MinLatency < 0 || b.MaxLatency < b.MinLatency {
		return fmt.Errorf("%w: latency [%s, %s]", ErrInvalidBounds, b.MinLatency, b.MaxLatency)
	}
	if math.IsNaN(b.MinConfidence) || math.IsNaN(b.MaxConfidence) {
		return fmt.Errorf("%w: confidence [%g, %g]", ErrInvalidBounds, b.MinConfidence, b.MaxConfidence)
	}
	if b.MinConfidence < 0 || b.MaxConfidence > 1 || b.MaxConfidence < b.MinConfidence {
		return fmt.Errorf("%w: confidence [%g, %g]", ErrInvalidBounds, b.MinConfidence, b.MaxConfidence)
	}
	return nil
}

// Placeholders expanded in the fallback answer. Entry answers are returned
// verbatim.
const (
	PlaceholderQuestion  = "{question}"
	PlaceholderDocuments = "{documents}"
)

// Builder wraps a matched entry, or the fallback, into a QueryResult with
// simulated metadata.
type Builder struct {
	bounds    Bounds
	fallback  models.FallbackResponse
	documents int
	rand      func() float64
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithRand sets the random source. It must return values in [0, 1) and be
// safe for concurrent use if the builder is shared.
func WithRand(fn func() float64) BuilderOption {
	return func(b *Builder) {
		b.rand = fn
	}
}

// WithDocumentCount sets the number of documents the demo claims to analyze.
func WithDocumentCount(n int) BuilderOption {
	return func(b *Builder) {
		b.documents = n
	}
}

// NewBuilder creates a builder using the table's fallback answer.
func NewBuilder(table *Table, bounds Bounds, opts ...BuilderOption) (*Builder, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	b := &Builder{
		bounds:   bounds,
		fallback: table.Fallback(),
		rand:     rand.Float64,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build always succeeds. A nil entry produces the fallback result.
func (b *Builder) Build(query string, entry *models.ResponseEntry) models.QueryResult {
	result := models.QueryResult{
		ID:                  uuid.New(),
		Query:               query,
		SimulatedLatencyMS:  b.latency().Milliseconds(),
		SimulatedConfidence: b.confidence(),
		DocumentsAnalyzed:   b.documents,
		Strategy:            models.StrategyStatic,
	}

	if entry == nil {
		result.Answer = b.fallbackAnswer(query)
		result.Sources = slices.Clone(b.fallback.Sources)
		return result
	}

	result.Matched = true
	result.EntryKey = entry.Key
	result.Answer = entry.Answer
	result.Sources = slices.Clone(entry.Sources)
	return result
}

func (b *Builder) fallbackAnswer(query string) string {
	return strings.NewReplacer(
		PlaceholderQuestion, strings.TrimSpace(query),
		PlaceholderDocuments, strconv.Itoa(b.documents),
	).Replace(b.fallback.Answer)
}

func (b *Builder) latency() time.Duration {
	span := b.bounds.MaxLatency - b.bounds.MinLatency
	return b.bounds.MinLatency + time.Duration(b.sample()*float64(span))
}

func (b *Builder) confidence() float64 {
	span := b.bounds.MaxConfidence - b.bounds.MinConfidence
	c := b.bounds.MinConfidence + b.sample()*span
	return min(max(c, b.bounds.MinConfidence), b.bounds.MaxConfidence)
}

// sample clamps the random source so a misbehaving one cannot leave the bounds.
func (b *Builder) sample() float64 {
	return min(max(b.rand(), 0), 1)
}
