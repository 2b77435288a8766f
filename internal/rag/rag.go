// Package rag answers questions from the indexed legal documents: the
// question is embedded, similar passages are fetched from the vector index
// and a chat model writes the answer from those passages only.
package rag

import (
	"context"
	"errors"
)

var (
	ErrEmptyQuery  = errors.New("query is empty")
	ErrNoPassages  = errors.New("no relevant passage found")
	ErrNoEmbedding = errors.New("embedding response is empty")
	ErrNoChoice    = errors.New("completion response has no choice")
)

// Passage is one retrieved chunk of a source document.
type Passage struct {
	Source  string
	Content string
}

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Searcher returns the passages closest to a vector, best first.
type Searcher interface {
	Search(ctx context.Context, vector []float32, topK int64) ([]Passage, error)
}

// Generator completes a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Validator is implemented by components that can check their credentials.
type Validator interface {
	Validate(ctx context.Context) error
}
