package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gofiber/fiber/v3"

	"legaldemo/internal/documents"
	"legaldemo/internal/models"
	"legaldemo/internal/responder"
)

type testEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

type failingAnswerer struct{}

func (failingAnswerer) Answer(context.Context, string) (*models.QueryResult, error) {
	return nil, errors.New("upstream unavailable")
}

func newStatic(t *testing.T) responder.Answerer {
	t.Helper()
	table := responder.DefaultTable()
	builder, err := responder.NewBuilder(table, responder.DefaultBounds(), responder.WithDocumentCount(5))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return responder.NewStatic(table, builder)
}

func newTestApp(t *testing.T, answerer responder.Answerer) *fiber.App {
	t.Helper()
	catalog, err := documents.Load(fstest.MapFS{
		"statuts_sarl.txt":            {Data: []byte("STATUTS")},
		"contrat_bail_commercial.txt": {Data: []byte("BAIL")},
	})
	if err != nil {
		t.Fatalf("documents.Load() error = %v", err)
	}

	query := NewQueryHandler(answerer)
	cat := NewCatalogHandler(responder.ExampleQuestions(), catalog)

	app := fiber.New()
	app.Get("/api/query", query.Get)
	app.Post("/api/query", query.Post)
	app.Get("/api/examples", cat.Examples)
	app.Get("/api/documents", cat.Documents)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, testEnvelope) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env testEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return resp.StatusCode, env
}

func TestQuery_Get(t *testing.T) {
	app := newTestApp(t, newStatic(t))

	target := "/api/query?q=" + url.QueryEscape("Quelle est la clause résolutoire du bail ?")
	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, target, nil))

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (error %q)", status, env.Error)
	}
	if env.Status != "ok" {
		t.Errorf("envelope status = %q, want ok", env.Status)
	}

	var res models.QueryResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	// "bail" does not match the bailleur entry, the résolutoire keyword does.
	if res.EntryKey != "clause-resolutoire" {
		t.Errorf("entry_key = %q, want clause-resolutoire", res.EntryKey)
	}
	if !res.Matched || res.Strategy != models.StrategyStatic {
		t.Errorf("matched = %v strategy = %q", res.Matched, res.Strategy)
	}
	if res.DocumentsAnalyzed != 5 {
		t.Errorf("documents_analyzed = %d, want 5", res.DocumentsAnalyzed)
	}
	if res.SimulatedLatencyMS < 300 || res.SimulatedLatencyMS > 2000 {
		t.Errorf("simulated_latency_ms = %d out of bounds", res.SimulatedLatencyMS)
	}
}

func TestQuery_Post(t *testing.T) {
	app := newTestApp(t, newStatic(t))

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantMatched bool
	}{
		{"json hit", fiber.MIMEApplicationJSON, `{"query":"Qui sont les associés de la SARL ?"}`, fiber.StatusOK, true},
		{"json miss", fiber.MIMEApplicationJSON, `{"query":"Quelle heure est-il ?"}`, fiber.StatusOK, false},
		{"form hit", fiber.MIMEApplicationForm, "query=" + url.QueryEscape("période d'essai"), fiber.StatusOK, true},
		{"empty query", fiber.MIMEApplicationJSON, `{"query":"  "}`, fiber.StatusBadRequest, false},
		{"malformed json", fiber.MIMEApplicationJSON, `{"query":`, fiber.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			status, env := doRequest(t, app, req)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d (error %q)", status, tt.wantStatus, env.Error)
			}
			if status != fiber.StatusOK {
				if env.Status != "error" || env.Error == "" {
					t.Errorf("expected error envelope, got %+v", env)
				}
				return
			}

			var res models.QueryResult
			if err := json.Unmarshal(env.Data, &res); err != nil {
				t.Fatalf("decode result: %v", err)
			}
			if res.Matched != tt.wantMatched {
				t.Errorf("matched = %v, want %v", res.Matched, tt.wantMatched)
			}
			if len(res.Sources) == 0 {
				t.Error("sources should never be empty")
			}
		})
	}
}

func TestQuery_ValidationErrors(t *testing.T) {
	app := newTestApp(t, newStatic(t))

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"missing", "/api/query", "La question est requise"},
		{"too long", "/api/query?q=" + strings.Repeat("a", 1001), "La question ne doit pas dépasser 1000 caractères"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if env.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", env.Error, tt.wantMsg)
			}
		})
	}
}

func TestQuery_AnswererFailure(t *testing.T) {
	app := newTestApp(t, failingAnswerer{})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/query?q=bailleur", nil))
	if status != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
}

func TestCatalog(t *testing.T) {
	app := newTestApp(t, newStatic(t))

	t.Run("examples", func(t *testing.T) {
		status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/examples", nil))
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		var got models.ExampleQuestionsResponse
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got.Questions) != len(responder.ExampleQuestions()) {
			t.Errorf("got %d questions, want %d", len(got.Questions), len(responder.ExampleQuestions()))
		}
	})

	t.Run("documents", func(t *testing.T) {
		status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/documents", nil))
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		var got models.DocumentsResponse
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Count != 2 || len(got.Documents) != 2 {
			t.Fatalf("documents = %+v, want 2", got)
		}
		if got.Documents[0].Name != "contrat_bail_commercial.txt" {
			t.Errorf("first document = %q, want contrat_bail_commercial.txt", got.Documents[0].Name)
		}
	})
}
