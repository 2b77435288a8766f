package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "responses.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write responses file: %v", err)
	}
	return path
}

func TestLoadResponsesFile(t *testing.T) {
	path := writeFile(t, `
entries:
  - key: hypertension
    keywords: [hypertension, HTA]
    answer: "Traitement de première intention : IEC ou ARA2."
    sources: [protocole_hypertension.txt]
  - keywords: [diabète]
    answer: "Objectif HbA1c inférieur à 7 %."
fallback:
  answer: "Aucune information trouvée."
  sources: [dossiers_medicaux]
examples:
  - "Quel traitement pour l'HTA ?"
`)

	rf, err := LoadResponsesFile(path)
	if err != nil {
		t.Fatalf("LoadResponsesFile() error = %v", err)
	}
	if len(rf.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(rf.Entries))
	}
	if rf.Entries[0].Key != "hypertension" {
		t.Errorf("Entries[0].Key = %q, want hypertension", rf.Entries[0].Key)
	}
	if got := rf.Entries[0].Keywords; len(got) != 2 || got[1] != "HTA" {
		t.Errorf("Entries[0].Keywords = %v, want [hypertension HTA]", got)
	}
	if rf.Entries[1].Key != "" {
		t.Errorf("Entries[1].Key = %q, want empty", rf.Entries[1].Key)
	}
	if rf.Fallback.Answer != "Aucune information trouvée." {
		t.Errorf("Fallback.Answer = %q", rf.Fallback.Answer)
	}
	if len(rf.Fallback.Sources) != 1 || rf.Fallback.Sources[0] != "dossiers_medicaux" {
		t.Errorf("Fallback.Sources = %v", rf.Fallback.Sources)
	}
	if len(rf.Examples) != 1 || rf.Examples[0] != "Quel traitement pour l'HTA ?" {
		t.Errorf("Examples = %v", rf.Examples)
	}
}

func TestLoadResponsesFile_ExamplesOptional(t *testing.T) {
	path := writeFile(t, `
entries:
  - keywords: [bail]
    answer: "Bail de 9 ans."
fallback:
  answer: "Pas de réponse."
`)

	rf, err := LoadResponsesFile(path)
	if err != nil {
		t.Fatalf("LoadResponsesFile() error = %v", err)
	}
	if len(rf.Examples) != 0 {
		t.Errorf("Examples = %v, want none", rf.Examples)
	}
}

func TestLoadResponsesFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadResponsesFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "entries: [unterminated\n")
		if _, err := LoadResponsesFile(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("no fallback", func(t *testing.T) {
		path := writeFile(t, "entries:\n  - keywords: [a]\n    answer: b\n")
		_, err := LoadResponsesFile(path)
		if !errors.Is(err, ErrNoFallback) {
			t.Errorf("error = %v, want ErrNoFallback", err)
		}
	})
}
