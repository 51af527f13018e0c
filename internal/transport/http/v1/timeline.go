package v1

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/service"
)

// GetTimeline retrieves a session's timeline, optionally grouped for
// display.
// GET /v1/sessions/:session_id/timeline?grouped=true
func (h *Handler) GetTimeline(c echo.Context) error {
	sessionID := c.Param("session_id")

	entries, err := h.service.GetTimeline(c.Request().Context(), sessionID)
	if err != nil {
		return jsonError(c, err)
	}

	if c.QueryParam("grouped") == "true" {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"groups": service.GroupTimeline(entries),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}

// LogSpeech appends one timeline entry for a spoken or selected turn.
// POST /v1/speech
func (h *Handler) LogSpeech(c echo.Context) error {
	var req domain.SpeechRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Speaker != domain.SpeakerParent && req.Speaker != domain.SpeakerChild {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "speaker must be parent or child"})
	}

	entry := domain.TimelineEntry{
		ID:           uuid.New().String(),
		Speaker:      req.Speaker,
		Transcript:   req.Transcript,
		RecordingURL: req.RecordingURL,
		CreatedAt:    time.Now(),
	}
	if req.CardID != "" {
		entry.Card = &domain.VisualCard{ID: req.CardID}
	}

	if _, err := h.service.AppendEntry(c.Request().Context(), req.SessionID, entry); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
