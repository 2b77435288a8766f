package responder

import (
	"context"
	"slices"
	"strings"
	"sync"
	"testing"

	"legaldemo/internal/models"
)

func newStatic(t *testing.T, table *Table) *Static {
	t.Helper()
	b, err := NewBuilder(table, DefaultBounds())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return NewStatic(table, b)
}

func TestStatic_Scenarios(t *testing.T) {
	s := newStatic(t, medicalTable(t))

	tests := []struct {
		name        string
		query       string
		wantMatched bool
		wantSources []string
	}{
		{"hypertension", "hypertension", true, []string{"protocole_hypertension.txt"}},
		{"unrelated question", "quelle heure est-il", false, []string{"dossiers_medicaux"}},
		{"empty query", "", false, []string{"dossiers_medicaux"}},
		{"blank query", "   ", false, []string{"dossiers_medicaux"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Respond(tt.query)
			if got.Matched != tt.wantMatched {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !slices.Equal(got.Sources, tt.wantSources) {
				t.Errorf("Sources = %q, want %q", got.Sources, tt.wantSources)
			}
			if !tt.wantMatched && got.Answer != "Aucune information trouvée." {
				t.Errorf("Answer = %q, want fallback", got.Answer)
			}
		})
	}
}

func TestStatic_ReturnsEntryUnchanged(t *testing.T) {
	table := DefaultTable()
	s := newStatic(t, table)

	for _, entry := range table.Entries() {
		for _, keyword := range entry.Keywords {
			t.Run(entry.Key+"/"+keyword, func(t *testing.T) {
				got := s.Respond("Dites-moi tout sur : " + strings.ToUpper(keyword) + " ?")
				if !got.Matched {
					t.Fatalf("keyword %q missed", keyword)
				}
				if got.EntryKey != entry.Key {
					t.Fatalf("EntryKey = %q, want %q", got.EntryKey, entry.Key)
				}
				if got.Answer != entry.Answer {
					t.Errorf("Answer changed for %q", entry.Key)
				}
				if !slices.Equal(got.Sources, entry.Sources) {
					t.Errorf("Sources = %q, want %q", got.Sources, entry.Sources)
				}
			})
		}
	}
}

func TestStatic_Answer(t *testing.T) {
	s := newStatic(t, medicalTable(t))

	got, err := s.Answer(context.Background(), "Patients HTA")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !got.Matched || got.EntryKey != "hypertension" {
		t.Errorf("Answer() = %+v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Answer(ctx, "anything"); err != nil {
		t.Errorf("Answer() with cancelled context error = %v, want nil", err)
	}
}

func TestStatic_ConcurrentUse(t *testing.T) {
	s := newStatic(t, DefaultTable())
	questions := ExampleQuestions()

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := range 64 {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			if r := s.Respond(q); !r.Matched {
				errs <- q
			}
		}(questions[i%len(questions)])
	}
	wg.Wait()
	close(errs)

	for q := range errs {
		t.Errorf("concurrent Respond(%q) missed", q)
	}
}

func TestDefaultTable_ExampleQuestions(t *testing.T) {
	s := newStatic(t, DefaultTable())

	tests := []struct {
		query   string
		wantKey string
	}{
		{"Quelles sont les obligations du bailleur dans le contrat de bail ?", "obligations-bailleur"},
		{"Quelle est la durée de la période d'essai ?", "periode-essai"},
		{"Quel montant est réclamé dans le jugement ?", "montant-reclame"},
		{"Qui sont les associés de la SARL ?", "associes-sarl"},
		{"Quelle est la clause résolutoire du bail ?", "clause-resolutoire"},
		{"Période d'essai contrat travail", "periode-essai"},
		{"Montant réclamé jugement", "montant-reclame"},
		{"Associés SARL Innovation Tech", "associes-sarl"},
		{"Clause résolutoire bail commercial", "clause-resolutoire"},
		{"Quelle est la répartition des parts sociales ?", "associes-sarl"},
		{"Question générale sur les contrats", ""},
		{"quelle heure est-il", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := s.Respond(tt.query)
			if got.EntryKey != tt.wantKey {
				t.Errorf("EntryKey = %q, want %q", got.EntryKey, tt.wantKey)
			}
			if got.Matched != (tt.wantKey != "") {
				t.Errorf("Matched = %v", got.Matched)
			}
		})
	}

	for _, q := range ExampleQuestions() {
		if r := s.Respond(q); !r.Matched {
			t.Errorf("example question %q falls back", q)
		}
	}
}

func TestDefaultTable_Valid(t *testing.T) {
	table := DefaultTable()
	if table.Len() != len(DefaultEntries()) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(DefaultEntries()))
	}
	seen := map[string]bool{}
	for _, e := range table.Entries() {
		if seen[e.Key] {
			t.Errorf("duplicate key %q", e.Key)
		}
		seen[e.Key] = true
		if e.Key == models.NoEntry {
			t.Errorf("entry uses reserved key %q", e.Key)
		}
	}
}
