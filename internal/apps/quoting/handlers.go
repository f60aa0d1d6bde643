package quoting

import (
	"errors"
	"log/slog"

	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type QuoteHandler struct {
	quoteService *QuoteService
}

func NewQuoteHandler(quoteService *QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// GetQuote handles POST /api/admin/iul-quote.
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if req.FaceAmount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("face_amount must be positive"))
	}

	quote, err := h.quoteService.Quote(req)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			slog.Error("quote API rejected request",
				"action", "iul_quote", "status", upstream.Status, "error", upstream.Message)
			return c.Status(upstream.Status).JSON(dto.Fail(upstream.Message))
		}
		slog.Error("quote request failed", "action", "iul_quote", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch quote"))
	}
	return c.JSON(quote)
}
