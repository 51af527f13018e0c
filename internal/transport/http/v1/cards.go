package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visualgenius/server/internal/domain"
)

// GenerateCards generates cards from a prompt, optionally persisting them
// against a session.
// POST /v1/cards
func (h *Handler) GenerateCards(c echo.Context) error {
	var req domain.GenerateCardsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	cards, err := h.service.GenerateCards(ctx, req.Prompt)
	if err != nil {
		return jsonError(c, err)
	}

	if req.SessionID != "" {
		if err := h.service.SaveSessionCards(ctx, req.SessionID, cards); err != nil {
			return jsonError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"cards": cards,
	})
}

// SaveCards persists an explicit card set against a session.
// PUT /v1/cards
func (h *Handler) SaveCards(c echo.Context) error {
	var req domain.SaveCardsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.service.SaveSessionCards(c.Request().Context(), req.SessionID, req.Cards); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"saved":   len(req.Cards),
	})
}

// SearchImages queries the image search provider. An unconfigured or
// failing provider yields an empty result list, not an error.
// POST /v1/images/search
func (h *Handler) SearchImages(c echo.Context) error {
	var req domain.ImageSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	results, err := h.service.SearchImages(c.Request().Context(), req.Query)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": results,
	})
}
