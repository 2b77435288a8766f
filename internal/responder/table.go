// Package responder implements the offline demo responder: a static keyword
// table, the matcher over it and the envelope that dresses canned answers up
// as live results.
package responder

import (
	"fmt"
	"slices"
	"strings"

	"legaldemo/internal/models"
)

// Table is an ordered, immutable set of canned answers. Entry order is
// priority order: the first entry with a matching keyword wins.
type Table struct {
	entries  []models.ResponseEntry
	fallback models.FallbackResponse
}

// NewTable validates and copies the given entries. Keywords are normalized
// once here so a lookup only has to normalize the question.
func NewTable(entries []models.ResponseEntry, fallback models.FallbackResponse) (*Table, error) {
	t := &Table{
		entries: make([]models.ResponseEntry, 0, len(entries)),
		fallback: models.FallbackResponse{
			Answer:  fallback.Answer,
			Sources: slices.Clone(fallback.Sources),
		},
	}

	if strings.TrimSpace(fallback.Answer) == "" {
		return nil, ErrEmptyFallback
	}

	for i, e := range entries {
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Key, ErrNoKeywords)
		}
		if strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Key, ErrEmptyAnswer)
		}

		keywords := make([]string, 0, len(e.Keywords))
		for _, k := range e.Keywords {
			k = Normalize(k)
			if k == "" {
				return nil, fmt.Errorf("entry %d (%s): %w", i, e.Key, ErrEmptyKeyword)
			}
			keywords = append(keywords, k)
		}

		key := e.Key
		if key == "" {
			key = keywords[0]
		}

		t.entries = append(t.entries, models.ResponseEntry{
			Key:      key,
			Keywords: keywords,
			Answer:   e.Answer,
			Sources:  slices.Clone(e.Sources),
		})
	}

	return t, nil
}

// Match returns the first entry whose keyword set has a member contained
// in the normalized query.
func (t *Table) Match(normalized string) (models.ResponseEntry, bool) {
	if normalized == "" {
		return models.ResponseEntry{}, false
	}
	for _, e := range t.entries {
		for _, k := range e.Keywords {
			if strings.Contains(normalized, k) {
				return cloneEntry(e), true
			}
		}
	}
	return models.ResponseEntry{}, false
}

// Fallback returns the designated no-match answer.
func (t *Table) Fallback() models.FallbackResponse {
	return models.FallbackResponse{
		Answer:  t.fallback.Answer,
		Sources: slices.Clone(t.fallback.Sources),
	}
}

// Entries returns a copy of the table entries in priority order.
func (t *Table) Entries() []models.ResponseEntry {
	out := make([]models.ResponseEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

func cloneEntry(e models.ResponseEntry) models.ResponseEntry {
	e.Keywords = slices.Clone(e.Keywords)
	e.Sources = slices.Clone(e.Sources)
	return e
}
