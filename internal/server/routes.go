package server

import (
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"legaldemo/internal/documents"
	"legaldemo/internal/handlers"
	"legaldemo/internal/handlers/api"
	"legaldemo/internal/middleware"
	"legaldemo/internal/responder"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Answerer responder.Answerer
	Catalog  *documents.Catalog
	Examples []string
	Gatherer prometheus.Gatherer
	DB       handlers.Pinger // nil when usage analytics are disabled
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize middleware
	accessMiddleware := middleware.NewAccessMiddleware(s.Cfg.DemoAccessKey, !s.Cfg.IsDev())
	if accessMiddleware.Enabled() {
		log.Println("Demo access key required (X-Demo-Key header, ?key= or cookie)")
	}

	// Initialize handlers
	demoHandler := handlers.NewDemoHandler(deps.Answerer, deps.Catalog, deps.Examples, s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.DB)
	queryHandler := api.NewQueryHandler(deps.Answerer)
	catalogHandler := api.NewCatalogHandler(deps.Examples, deps.Catalog)

	// Probes and metrics are always public
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Demo page
	s.App.Get("/", accessMiddleware.RequireKey, demoHandler.Index)
	s.App.Post("/ask", accessMiddleware.RequireKey, demoHandler.Ask)

	// JSON API
	apiGroup := s.App.Group("/api", accessMiddleware.RequireKey)
	apiGroup.Get("/query", queryHandler.Get)
	apiGroup.Post("/query", queryHandler.Post)
	apiGroup.Get("/examples", catalogHandler.Examples)
	apiGroup.Get("/documents", catalogHandler.Documents)
}
