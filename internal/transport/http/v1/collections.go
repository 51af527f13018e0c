package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visualgenius/server/internal/domain"
)

// ListCollections lists a caller's collections.
// GET /v1/collections?owner_id=
func (h *Handler) ListCollections(c echo.Context) error {
	ownerID := c.QueryParam("owner_id")
	if ownerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "owner_id is required"})
	}

	collections, err := h.service.ListCollections(c.Request().Context(), ownerID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"collections": collections,
	})
}

// CollectionAction multiplexes create / updateOrder / updateName by the
// request's action field.
// POST /v1/collections
func (h *Handler) CollectionAction(c echo.Context) error {
	var req domain.CollectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	switch req.Action {
	case "", "create":
		collectionID, err := h.service.CreateCollection(ctx, req.Name, req.Cards, req.OwnerUserID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"collection_id": collectionID,
			"message":       "collection created",
		})

	case "updateOrder":
		if err := h.service.ReplaceCardOrder(ctx, req.CollectionID, req.Cards); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "card order updated"})

	case "updateName":
		if err := h.service.RenameCollection(ctx, req.CollectionID, req.Name); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "collection renamed"})

	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid action"})
	}
}

// DeleteCollection removes a collection by id. Protected demo collections
// are refused with 403.
// DELETE /v1/collections?collection_id=
func (h *Handler) DeleteCollection(c echo.Context) error {
	collectionID := c.QueryParam("collection_id")
	if collectionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "collection_id is required"})
	}

	if err := h.service.DeleteCollection(c.Request().Context(), collectionID); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "collection deleted"})
}
