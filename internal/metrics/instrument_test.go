package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"legaldemo/internal/models"
	"legaldemo/internal/responder"
)

type answererFunc func(ctx context.Context, query string) (*models.QueryResult, error)

func (f answererFunc) Answer(ctx context.Context, query string) (*models.QueryResult, error) {
	return f(ctx, query)
}

func TestInstrument_RecordsAnswers(t *testing.T) {
	builder, err := responder.NewBuilder(responder.DefaultTable(), responder.DefaultBounds())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	r := NewRecorder(nil)
	a := Instrument(responder.NewStatic(responder.DefaultTable(), builder), r)

	for _, q := range []string{"Qui sont les associés ?", "Quelle heure est-il ?", "Le bailleur ?"} {
		if _, err := a.Answer(context.Background(), q); err != nil {
			t.Fatalf("Answer(%q) error = %v", q, err)
		}
	}

	totals := r.Totals()
	want := []models.LookupDelta{
		{Entry: "associes-sarl", Outcome: models.OutcomeMatched, Count: 1},
		{Entry: models.NoEntry, Outcome: models.OutcomeFallback, Count: 1},
		{Entry: "obligations-bailleur", Outcome: models.OutcomeMatched, Count: 1},
	}
	if len(totals) != len(want) {
		t.Fatalf("Totals() = %v, want %v", totals, want)
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("Totals()[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}
}

func TestInstrument_SkipsErrors(t *testing.T) {
	r := NewRecorder(nil)
	failing := answererFunc(func(context.Context, string) (*models.QueryResult, error) {
		return nil, errors.New("upstream down")
	})
	a := Instrument(failing, r)
	a.now = func() time.Time { return time.Unix(0, 0) }

	if _, err := a.Answer(context.Background(), "bailleur"); err == nil {
		t.Fatal("expected error")
	}
	if len(r.Totals()) != 0 {
		t.Errorf("Totals() = %v, want empty", r.Totals())
	}
}
