// Package v1 provides HTTP handlers for the conversation backend.
package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Card generation and persistence
	e.POST("/v1/cards", h.GenerateCards)
	e.PUT("/v1/cards", h.SaveCards)

	// Collections
	e.GET("/v1/collections", h.ListCollections)
	e.POST("/v1/collections", h.CollectionAction)
	e.DELETE("/v1/collections", h.DeleteCollection)

	// Sessions
	e.GET("/v1/sessions", h.GetSessions)
	e.POST("/v1/sessions", h.CreateSession)
	e.PUT("/v1/sessions", h.UpdateSession)
	e.DELETE("/v1/sessions", h.DeleteSession)
	e.GET("/v1/sessions/:session_id/timeline", h.GetTimeline)

	// Turn logging
	e.POST("/v1/speech", h.LogSpeech)

	// Image search
	e.POST("/v1/images/search", h.SearchImages)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// jsonError maps the domain error taxonomy to HTTP status codes and a
// structured {error} body. Upstream failures are reported as 400 like
// validation failures: from the caller's side a generation that cannot
// complete is a failed request, not a gateway condition.
func jsonError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrMalformedResponse):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
