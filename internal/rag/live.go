package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"legaldemo/internal/models"
)

// DefaultTopK is the number of passages retrieved per question.
const DefaultTopK = 5

// MaxSources caps the distinct documents cited in a result.
const MaxSources = 3

// Live answers from the vector index through a chat model.
type Live struct {
	embedder  Embedder
	searcher  Searcher
	generator Generator
	topK      int64
	documents int
	now       func() time.Time
}

// Option customizes a Live answerer.
type Option func(*Live)

// WithTopK sets the number of passages to retrieve.
func WithTopK(k int64) Option {
	return func(l *Live) {
		if k > 0 {
			l.topK = k
		}
	}
}

// WithDocumentCount sets the number of documents reported as analyzed.
func WithDocumentCount(n int) Option {
	return func(l *Live) {
		l.documents = n
	}
}

// WithClock replaces time.Now for latency measurement.
func WithClock(now func() time.Time) Option {
	return func(l *Live) {
		l.now = now
	}
}

// NewLive wires the three pipeline stages together.
func NewLive(embedder Embedder, searcher Searcher, generator Generator, opts ...Option) *Live {
	l := &Live{
		embedder:  embedder,
		searcher:  searcher,
		generator: generator,
		topK:      DefaultTopK,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Answer runs embed, search and generate for query. Any stage failure is
// returned wrapped so callers can fall back to the static table.
func (l *Live) Answer(ctx context.Context, query string) (*models.QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	start := l.now()

	vector, err := l.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	passages, err := l.searcher.Search(ctx, vector, l.topK)
	if err != nil {
		return nil, fmt.Errorf("search passages: %w", err)
	}
	if len(passages) == 0 {
		return nil, ErrNoPassages
	}

	answer, err := l.generator.Generate(ctx, BuildPrompt(query, passages))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &models.QueryResult{
		ID:                 uuid.New(),
		Query:              query,
		Matched:            true,
		Answer:             answer,
		Sources:            distinctSources(passages, MaxSources),
		SimulatedLatencyMS: l.now().Sub(start).Milliseconds(),
		DocumentsAnalyzed:  l.documents,
		Strategy:           models.StrategyLive,
	}, nil
}

// Validate checks the credentials of every stage that supports it.
func (l *Live) Validate(ctx context.Context) error {
	var errs []error
	for _, stage := range []any{l.embedder, l.searcher, l.generator} {
		v, ok := stage.(Validator)
		if !ok {
			continue
		}
		if err := v.Validate(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	// The same client often serves as embedder and generator.
	return errors.Join(dedupe(errs)...)
}

func distinctSources(passages []Passage, limit int) []string {
	seen := make(map[string]bool, limit)
	sources := make([]string, 0, limit)
	for _, p := range passages {
		if p.Source == "" || seen[p.Source] {
			continue
		}
		seen[p.Source] = true
		sources = append(sources, p.Source)
		if len(sources) == limit {
			break
		}
	}
	return sources
}

func dedupe(errs []error) []error {
	seen := make(map[string]bool, len(errs))
	out := errs[:0]
	for _, err := range errs {
		if seen[err.Error()] {
			continue
		}
		seen[err.Error()] = true
		out = append(out, err)
	}
	return out
}
