package api

import (
	"github.com/gofiber/fiber/v3"

	"legaldemo/internal/documents"
	"legaldemo/internal/models"
)

// CatalogHandler lists the example questions and the demo documents.
type CatalogHandler struct {
	examples []string
	catalog  *documents.Catalog
}

// NewCatalogHandler creates a new API catalog handler.
func NewCatalogHandler(examples []string, catalog *documents.Catalog) *CatalogHandler {
	return &CatalogHandler{examples: examples, catalog: catalog}
}

// Examples returns the suggested questions.
func (h *CatalogHandler) Examples(c fiber.Ctx) error {
	questions := h.examples
	if questions == nil {
		questions = []string{}
	}
	return jsonSuccess(c, models.ExampleQuestionsResponse{Questions: questions})
}

// Documents returns the documents the demo analyzes.
func (h *CatalogHandler) Documents(c fiber.Ctx) error {
	return jsonSuccess(c, models.DocumentsResponse{
		Count:     h.catalog.Len(),
		Documents: h.catalog.Summaries(),
	})
}
