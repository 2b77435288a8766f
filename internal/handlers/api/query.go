package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"legaldemo/internal/responder"
	"legaldemo/internal/validation"
)

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	Query string `json:"query" form:"query"`
}

// QueryHandler answers questions via JSON API.
type QueryHandler struct {
	answerer responder.Answerer
}

// NewQueryHandler creates a new API query handler.
func NewQueryHandler(answerer responder.Answerer) *QueryHandler {
	return &QueryHandler{answerer: answerer}
}

// Get answers the question in the q query parameter.
func (h *QueryHandler) Get(c fiber.Ctx) error {
	return h.answer(c, c.Query("q"))
}

// Post answers the question in the request body.
func (h *QueryHandler) Post(c fiber.Ctx) error {
	var req QueryRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	return h.answer(c, req.Query)
}

func (h *QueryHandler) answer(c fiber.Ctx, query string) error {
	if valid, msg := validation.ValidateQuery(query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result, err := h.answerer.Answer(c.Context(), query)
	if err != nil {
		slog.Error("failed to answer query", "error", err)
		return jsonError(c, fiber.StatusBadGateway, "failed to answer query")
	}

	return jsonSuccess(c, result)
}
