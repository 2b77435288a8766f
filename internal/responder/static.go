package responder

import (
	"context"

	"legaldemo/internal/models"
)

// Answerer answers a free-text question. Implementations are the static
// keyword table and the live retrieval pipeline.
type Answerer interface {
	Answer(ctx context.Context, query string) (*models.QueryResult, error)
}

// Static answers from the keyword table. It holds no mutable state and is
// safe for concurrent use.
type Static struct {
	table   *Table
	builder *Builder
}

// NewStatic creates a static responder over a validated table.
func NewStatic(table *Table, builder *Builder) *Static {
	return &Static{table: table, builder: builder}
}

// Respond runs normalize, match and build for one question.
func (s *Static) Respond(query string) models.QueryResult {
	entry, ok := s.table.Match(Normalize(query))
	if !ok {
		return s.builder.Build(query, nil)
	}
	return s.builder.Build(query, &entry)
}

// Answer implements Answerer. It never returns an error.
func (s *Static) Answer(_ context.Context, query string) (*models.QueryResult, error) {
	result := s.Respond(query)
	return &result, nil
}
