package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"legaldemo/internal/models"
)

// ErrNoFallback is returned when a responses file omits the fallback answer.
var ErrNoFallback = errors.New("responses file has no fallback answer")

// ResponsesFile is the YAML layout of a replacement response table.
//
//	entries:
//	  - key: hypertension
//	    keywords: [hypertension, hta]
//	    answer: "..."
//	    sources: [protocole_hypertension.txt]
//	fallback:
//	  answer: "..."
//	  sources: [dossiers_medicaux]
//	examples:
//	  - "Quel traitement pour l'hypertension ?"
//
// Examples are optional. A file without them suggests no questions.
type ResponsesFile struct {
	Entries  []models.ResponseEntry  `yaml:"entries"`
	Fallback models.FallbackResponse `yaml:"fallback"`
	Examples []string                `yaml:"examples"`
}

// LoadResponsesFile reads a response table from path.
// Table invariants are checked later by responder.NewTable; only the
// presence of a fallback answer is enforced here.
func LoadResponsesFile(path string) (*ResponsesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses file: %w", err)
	}

	var rf ResponsesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse responses file %s: %w", path, err)
	}
	if rf.Fallback.Answer == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNoFallback)
	}

	return &rf, nil
}
