package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/dto"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/service"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/response"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Create handles POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, event)
}

// GetByID handles GET /events/:eventId
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, event)
}

// ListByAdmin handles GET /events/admin/:adminId
func (h *EventHandler) ListByAdmin(c *gin.Context) {
	events, err := h.eventService.ListAdminEvents(c.Request.Context(), c.Param("adminId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, events)
}

// Update handles PUT /events/:eventId
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("eventId"), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, event)
}

// UpdateStatus handles PATCH /events/:eventId/status
func (h *EventHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	event, err := h.eventService.UpdateEventStatus(c.Request.Context(), c.Param("eventId"), domain.EventStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			response.BadRequest(c, "invalid status")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, event)
}

// RecordTicketSale handles POST /events/:eventId/ticket-sale
func (h *EventHandler) RecordTicketSale(c *gin.Context) {
	var req dto.TicketSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "amount is required")
		return
	}

	event, err := h.eventService.RecordTicketSale(c.Request.Context(), c.Param("eventId"), req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			response.BadRequest(c, "amount must be a decimal string")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, event)
}
