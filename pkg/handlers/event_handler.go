package handlers

import (
	"errors"
	"net/http"

	"mawasim/internal/core"
	"mawasim/internal/service"

	"github.com/google/uuid"
	pbCore "github.com/pocketbase/pocketbase/core"
)

// EventHandler is the admin CRUD surface over the event catalog.
type EventHandler struct {
	Catalog *service.CatalogService
}

// ListEvents returns the full catalog in insertion order.
// GET /api/admin/events
func (h *EventHandler) ListEvents(e *pbCore.RequestEvent) error {
	return e.JSON(http.StatusOK, h.Catalog.List())
}

// UpsertEvent creates or replaces an event by id.
// POST /api/admin/events
func (h *EventHandler) UpsertEvent(e *pbCore.RequestEvent) error {
	var event core.MarketingEvent
	if err := e.BindBody(&event); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	// The one visible place a blank priority is defaulted. Validation
	// itself rejects a missing priority.
	if event.Priority == "" {
		event.Priority = core.PriorityMedium
	}

	if err := h.Catalog.Upsert(event); err != nil {
		if errors.Is(err, core.ErrInvalid) {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return e.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event. Unknown ids are a no-op.
// DELETE /api/admin/events/{id}
func (h *EventHandler) DeleteEvent(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing event ID"})
	}

	if err := h.Catalog.Remove(id); err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, map[string]string{"message": "Event removed"})
}
