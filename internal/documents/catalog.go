// Package documents lists the legal documents the demo presents as its
// analyzed corpus.
package documents

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"legaldemo/internal/models"
)

// Document types
const (
	TypeText = "txt"
	TypePDF  = "pdf"
)

// ErrNoText is returned when a PDF yields no extractable text.
var ErrNoText = errors.New("no text extracted from pdf")

// Document is one file of the catalog with its plain text.
type Document struct {
	Name    string
	Type    string
	Content string
}

// Catalog is an immutable, name-sorted set of documents.
type Catalog struct {
	docs []Document
}

// Load reads every .txt and .pdf file at the root of fsys. Other files and
// subdirectories are ignored.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch strings.ToLower(path.Ext(name)) {
		case ".txt":
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", name, err)
			}
			docs = append(docs, Document{Name: name, Type: TypeText, Content: string(data)})
		case ".pdf":
			text, err := readPDF(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", name, err)
			}
			docs = append(docs, Document{Name: name, Type: TypePDF, Content: text})
		}
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return &Catalog{docs: docs}, nil
}

// LoadDir is Load over a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Len returns the number of documents.
func (c *Catalog) Len() int {
	return len(c.docs)
}

// Documents returns a copy of the documents in name order.
func (c *Catalog) Documents() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Summaries describes the documents for the API.
func (c *Catalog) Summaries() []models.DocumentSummary {
	out := make([]models.DocumentSummary, 0, len(c.docs))
	for _, d := range c.docs {
		out = append(out, models.DocumentSummary{
			Name:  d.Name,
			Type:  d.Type,
			Bytes: len(d.Content),
		})
	}
	return out
}

// readPDF extracts plain text. The pdf reader needs a real file, so the
// content is copied to a temporary one first.
func readPDF(fsys fs.FS, name string) (string, error) {
	src, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "legaldemo-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return "", err
	}

	f, rdr, err := pdf.Open(tmp.Name())
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := rdr.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
