package metrics

import (
	"context"
	"time"

	"legaldemo/internal/models"
	"legaldemo/internal/responder"
)

// Instrumented records every successful answer of the wrapped answerer.
type Instrumented struct {
	next     responder.Answerer
	recorder *Recorder
	now      func() time.Time
}

// Instrument wraps next so its answers are counted by r.
func Instrument(next responder.Answerer, r *Recorder) *Instrumented {
	return &Instrumented{next: next, recorder: r, now: time.Now}
}

// Answer delegates to the wrapped answerer. Errors are passed through
// unrecorded.
func (i *Instrumented) Answer(ctx context.Context, query string) (*models.QueryResult, error) {
	start := i.now()
	res, err := i.next.Answer(ctx, query)
	if err != nil {
		return nil, err
	}
	i.recorder.Record(res, i.now().Sub(start))
	return res, nil
}
