// internal/handlers/event.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okaimono/shotengai-backend/internal/i18n"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// GET /events
func (h *EventHandler) GetEvents(c *gin.Context) {
	params := services.EventListParams{
		Today:    time.Now(),
		Category: c.Query("tag"),
		Query:    c.Query("q"),
	}

	listing, err := h.eventService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, listing)
}

// GET /events/:slug
func (h *EventHandler) GetEvent(c *gin.Context) {
	view, err := h.eventService.BySlug(c.Param("slug"), time.Now())
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			utils.NotFoundResponse(c, "event")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"event": view})
}

// POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	event, err := h.eventService.Create(lang, &req)
	if err != nil {
		var validationErr *services.EventValidationError
		if errors.As(err, &validationErr) {
			utils.ValidationErrorResponse(c, validationErr.Errors)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEventCreated),
		"event":   event,
	})
}
