package responder

import (
	"context"
	"log/slog"

	"legaldemo/internal/models"
)

// Fallback answers with Primary and switches to Secondary when Primary
// fails, so a live demo never shows an error.
type Fallback struct {
	Primary   Answerer
	Secondary Answerer
	Logger    *slog.Logger
}

// Answer implements Answerer.
func (f *Fallback) Answer(ctx context.Context, query string) (*models.QueryResult, error) {
	result, err := f.Primary.Answer(ctx, query)
	if err == nil {
		return result, nil
	}

	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("primary answerer failed, switching to demo responses", "error", err)

	return f.Secondary.Answer(ctx, query)
}
