package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/visualgenius/server/internal/domain"
)

// GetSessions fetches one session by id, a filtered list by owner, or
// owner statistics.
// GET /v1/sessions?session_id= | ?owner_id=&status=&child_id=&start_date=&end_date=&limit=&offset= | ?owner_id=&stats=true
func (h *Handler) GetSessions(c echo.Context) error {
	ctx := c.Request().Context()

	if sessionID := c.QueryParam("session_id"); sessionID != "" {
		session, err := h.service.GetSession(ctx, sessionID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"session": session})
	}

	ownerID := c.QueryParam("owner_id")
	if ownerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "owner_id or session_id is required"})
	}

	if c.QueryParam("stats") == "true" {
		stats, err := h.service.GetStatistics(ctx, ownerID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"statistics": stats})
	}

	filter := domain.SessionFilter{
		Status:  domain.SessionStatus(c.QueryParam("status")),
		ChildID: c.QueryParam("child_id"),
	}
	if v := c.QueryParam("start_date"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.StartDate = &t
		}
	}
	if v := c.QueryParam("end_date"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.EndDate = &t
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	sessions, err := h.service.ListSessions(ctx, ownerID, filter)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// CreateSession creates a new conversation session.
// POST /v1/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	var req domain.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	session, err := h.service.CreateSession(c.Request().Context(), req)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"session": session})
}

// UpdateSession applies a partial update to a session.
// PUT /v1/sessions
func (h *Handler) UpdateSession(c echo.Context) error {
	var req domain.UpdateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}

	session, err := h.service.UpdateSession(c.Request().Context(), req.SessionID, domain.SessionUpdate{
		Status:  req.Status,
		Notes:   req.Notes,
		Topic:   req.Topic,
		EndedAt: req.EndedAt,
	})
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"session": session})
}

// DeleteSession removes a session and cascades to its cards and entries.
// DELETE /v1/sessions?session_id=
func (h *Handler) DeleteSession(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}

	if err := h.service.DeleteSession(c.Request().Context(), sessionID); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
