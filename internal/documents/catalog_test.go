package documents

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"legaldemo/demodocs"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"statuts_sarl.txt":            {Data: []byte("STATUTS DE LA SARL")},
		"contrat_bail_commercial.txt": {Data: []byte("CONTRAT DE BAIL COMMERCIAL")},
		"README.md":                   {Data: []byte("not a document")},
		"archive/ancien_bail.txt":     {Data: []byte("ignored, in a subdirectory")},
	}

	catalog, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", catalog.Len())
	}

	docs := catalog.Documents()
	if docs[0].Name != "contrat_bail_commercial.txt" || docs[1].Name != "statuts_sarl.txt" {
		t.Errorf("documents not sorted by name: %s, %s", docs[0].Name, docs[1].Name)
	}
	if docs[0].Type != TypeText {
		t.Errorf("Type = %q, want %q", docs[0].Type, TypeText)
	}
	if docs[0].Content != "CONTRAT DE BAIL COMMERCIAL" {
		t.Errorf("Content = %q", docs[0].Content)
	}

	summaries := catalog.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("len(Summaries()) = %d, want 2", len(summaries))
	}
	if summaries[1].Bytes != len("STATUTS DE LA SARL") {
		t.Errorf("Bytes = %d, want %d", summaries[1].Bytes, len("STATUTS DE LA SARL"))
	}
}

func TestLoad_Empty(t *testing.T) {
	catalog, err := Load(fstest.MapFS{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}
	if s := catalog.Summaries(); s == nil || len(s) != 0 {
		t.Errorf("Summaries() = %v, want empty non-nil slice", s)
	}
}

func TestLoad_InvalidPDF(t *testing.T) {
	fsys := fstest.MapFS{
		"scan.pdf": {Data: []byte("this is not a pdf")},
	}
	if _, err := Load(fsys); err == nil {
		t.Error("expected error for an unreadable pdf")
	}
}

func TestLoad_Bundled(t *testing.T) {
	catalog, err := Load(demodocs.FS)
	if err != nil {
		t.Fatalf("Load(demodocs.FS) error = %v", err)
	}

	want := []string{
		"contrat_bail_commercial.txt",
		"contrat_travail_cdi.txt",
		"jugement_tribunal_commerce.txt",
		"procedure_civile_assignation.txt",
		"statuts_sarl.txt",
	}
	docs := catalog.Documents()
	if len(docs) != len(want) {
		t.Fatalf("got %d bundled documents, want %d", len(docs), len(want))
	}
	for i, name := range want {
		if docs[i].Name != name {
			t.Errorf("docs[%d] = %q, want %q", i, docs[i].Name, name)
		}
		if docs[i].Content == "" {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "assignation.txt"), []byte("ASSIGNATION"), 0o600); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if catalog.Len() != 1 {
		t.Errorf("Len() = %d, want 1", catalog.Len())
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
