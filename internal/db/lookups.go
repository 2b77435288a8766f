package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"legaldemo/internal/models"
)

const upsertLookup = `
	INSERT INTO answer_lookups (entry, outcome, count, last_seen_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (entry, outcome) DO UPDATE
	SET count = answer_lookups.count + EXCLUDED.count, last_seen_at = NOW()
`

// IncrementLookups adds a batch of pending counts in a single transaction.
// An empty batch is a no-op.
func (d *DB) IncrementLookups(ctx context.Context, deltas []models.LookupDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, delta := range deltas {
		if err := validateDelta(delta); err != nil {
			return err
		}
		batch.Queue(upsertLookup, delta.Entry, delta.Outcome, delta.Count)
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert answer lookups: %w", err)
	}

	return tx.Commit(ctx)
}

// GetAllLookups returns all answer lookup rows for metrics export.
func (d *DB) GetAllLookups(ctx context.Context) ([]models.AnswerLookup, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT entry, outcome, count, last_seen_at
		FROM answer_lookups
		ORDER BY entry, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.AnswerLookup
	for rows.Next() {
		var l models.AnswerLookup
		if err := rows.Scan(&l.Entry, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

func validateDelta(delta models.LookupDelta) error {
	if delta.Entry == "" {
		return ErrEmptyEntry
	}
	switch delta.Outcome {
	case models.OutcomeMatched, models.OutcomeFallback, models.OutcomeLive:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, delta.Outcome)
	}
}
