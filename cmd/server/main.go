package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"legaldemo/demodocs"
	"legaldemo/internal/config"
	"legaldemo/internal/db"
	"legaldemo/internal/documents"
	"legaldemo/internal/jobs"
	"legaldemo/internal/metrics"
	"legaldemo/internal/rag"
	"legaldemo/internal/responder"
	"legaldemo/internal/server"
	"legaldemo/internal/validation"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	if ok, msg := validation.ValidateURL(cfg.BaseURL); !ok {
		log.Fatalf("Invalid BASE_URL: %s", msg)
	}
	if cfg.CORSOrigins != "" {
		if ok, msg := validation.ValidateOrigins(cfg.CORSOrigins); !ok {
			log.Fatalf("Invalid CORS_ORIGINS: %s", msg)
		}
	}

	// Document catalog
	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load demo documents: %v", err)
	}
	log.Printf("Loaded %d demo documents", catalog.Len())

	// Response table
	table, examples, err := loadTable(cfg)
	if err != nil {
		log.Fatalf("Failed to load response table: %v", err)
	}

	builder, err := responder.NewBuilder(table, cfg.SimulationBounds(), responder.WithDocumentCount(catalog.Len()))
	if err != nil {
		log.Fatalf("Invalid simulation bounds: %v", err)
	}

	var answerer responder.Answerer = responder.NewStatic(table, builder)
	if cfg.IsLiveEnabled() {
		live, err := newLive(ctx, cfg, catalog.Len())
		if err != nil {
			log.Printf("Warning: live mode unavailable, serving demo responses: %v", err)
		} else {
			answerer = &responder.Fallback{Primary: live, Secondary: answerer}
			log.Println("Live mode enabled (OpenAI + Pinecone)")
		}
	} else {
		log.Println("Demo mode: answering from the static response table")
	}

	// Usage analytics (optional)
	var (
		store    metrics.Store
		database *db.DB
	)
	if cfg.IsAnalyticsEnabled() {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
		store = database
	}

	recorder := metrics.NewRecorder(store)
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := recorder.Register(reg); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}
	answerer = metrics.Instrument(answerer, recorder)

	flusherDone := make(chan struct{})
	if store != nil {
		flusher := jobs.NewLookupFlusher(recorder, cfg.LookupFlushInterval)
		go func() {
			flusher.Start(ctx)
			close(flusherDone)
		}()
	} else {
		close(flusherDone)
	}

	// Create server
	srv := server.New(cfg)
	deps := server.Deps{
		Answerer: answerer,
		Catalog:  catalog,
		Examples: examples,
		Gatherer: reg,
	}
	if database != nil {
		deps.DB = database
	}
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	slog.Info("server started", "addr", cfg.ServerAddr, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	cancel()
	select {
	case <-flusherDone:
	case <-time.After(10 * time.Second):
		log.Println("Timed out waiting for the lookup flusher")
	}
	log.Println("Server exited")
}

func loadCatalog(cfg *config.Config) (*documents.Catalog, error) {
	if cfg.DemoDocsDir != "" {
		return documents.LoadDir(cfg.DemoDocsDir)
	}
	return documents.Load(demodocs.FS)
}

// loadTable returns the response table and the example questions that go
// with it.
func loadTable(cfg *config.Config) (*responder.Table, []string, error) {
	if cfg.ResponsesFile == "" {
		return responder.DefaultTable(), responder.ExampleQuestions(), nil
	}
	rf, err := config.LoadResponsesFile(cfg.ResponsesFile)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Loaded %d responses and %d examples from %s", len(rf.Entries), len(rf.Examples), cfg.ResponsesFile)
	table, err := responder.NewTable(rf.Entries, rf.Fallback)
	if err != nil {
		return nil, nil, err
	}
	return table, rf.Examples, nil
}

func newLive(ctx context.Context, cfg *config.Config, documentCount int) (*rag.Live, error) {
	ai := rag.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIEmbeddingModel, cfg.OpenAIChatModel)
	index, err := rag.NewPinecone(rag.PineconeConfig{
		APIKey:      cfg.PineconeAPIKey,
		Environment: cfg.PineconeEnvironment,
		Project:     cfg.PineconeProject,
		Index:       cfg.PineconeIndex,
	})
	if err != nil {
		return nil, err
	}

	live := rag.NewLive(ai, index, ai, rag.WithTopK(cfg.RAGTopK), rag.WithDocumentCount(documentCount))

	validateCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := live.Validate(validateCtx); err != nil {
		return nil, err
	}
	return live, nil
}
