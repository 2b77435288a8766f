package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"legaldemo/internal/config"
	"legaldemo/internal/documents"
	"legaldemo/internal/responder"
	"legaldemo/internal/validation"
)

// DemoHandler serves the interactive demo page.
type DemoHandler struct {
	answerer responder.Answerer
	catalog  *documents.Catalog
	examples []string
	cfg      *config.Config
}

// NewDemoHandler creates a new demo handler.
func NewDemoHandler(answerer responder.Answerer, catalog *documents.Catalog, examples []string, cfg *config.Config) *DemoHandler {
	return &DemoHandler{
		answerer: answerer,
		catalog:  catalog,
		examples: examples,
		cfg:      cfg,
	}
}

// Index renders the demo page.
func (h *DemoHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.pageData(fiber.Map{}))
}

// Ask answers the submitted question. HTMX requests get the answer partial,
// plain form posts get the whole page.
func (h *DemoHandler) Ask(c fiber.Ctx) error {
	question := c.FormValue("question")
	htmx := c.Get("HX-Request") == "true"

	if valid, msg := validation.ValidateQuery(question); !valid {
		if htmx {
			return htmxError(c, msg)
		}
		return c.Status(fiber.StatusBadRequest).Render("index", h.pageData(fiber.Map{
			"Question": question,
			"Error":    msg,
		}))
	}

	result, err := h.answerer.Answer(c.Context(), question)
	if err != nil {
		slog.Error("failed to answer question", "error", err)
		msg := "Désolé, une erreur s'est produite lors de la génération de la réponse."
		if htmx {
			return htmxError(c, msg)
		}
		return c.Status(fiber.StatusBadGateway).Render("index", h.pageData(fiber.Map{
			"Question": question,
			"Error":    msg,
		}))
	}

	if htmx {
		return c.Render("partials/answer", fiber.Map{"Result": result}, "")
	}
	return c.Render("index", h.pageData(fiber.Map{
		"Question": question,
		"Result":   result,
	}))
}

func (h *DemoHandler) pageData(data fiber.Map) fiber.Map {
	data["Examples"] = h.examples
	data["Documents"] = h.catalog.Summaries()
	data["DocumentCount"] = h.catalog.Len()
	return MergeBranding(data, h.cfg)
}
