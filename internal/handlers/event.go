// internal/handlers/event.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/visioncraft/visioncraft-backend/internal/services"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

type EventHandler struct {
	eventService      *services.EventService
	engagementService *services.EngagementService
}

func NewEventHandler(eventService *services.EventService, engagementService *services.EngagementService) *EventHandler {
	return &EventHandler{
		eventService:      eventService,
		engagementService: engagementService,
	}
}

// GET /events
func (h *EventHandler) List(c *gin.Context) {
	upcoming, _ := strconv.ParseBool(c.DefaultQuery("upcoming", "false"))
	params := services.EventListParams{
		EventType: c.Query("type"),
		Upcoming:  upcoming,
	}

	var userID *uuid.UUID
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	events, err := h.eventService.ListEvents(params, userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "event")
		return
	}

	var userID *uuid.UUID
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	event, err := h.eventService.GetEvent(eventID, userID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			utils.NotFoundResponse(c, "event")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"event": event})
}

// POST /events/:id/rsvp
func (h *EventHandler) ToggleRSVP(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "event")
		return
	}

	result, err := h.engagementService.ToggleRSVP(userID, eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			utils.NotFoundResponse(c, "event")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, result)
}
