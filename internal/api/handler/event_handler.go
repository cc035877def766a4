package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

// EventHandler serves the event endpoints, including the approval
// transitions.
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler creates the EventHandler.
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// Create registers an event.
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.eventSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get returns one event.
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	result, err := h.eventSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 13001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List returns events with filters and paging.
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	result, total, err := h.eventSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, result, total, req.Page, req.PageSize)
}

// Update edits event content fields.
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrEventFinalized):
			response.Conflict(c, 13002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete removes an unreferenced event.
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrEventReferenced):
			response.Conflict(c, 13003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Approve records the caller authority's approval.
// POST /api/v1/events/:id/approve
func (h *EventHandler) Approve(c *gin.Context) {
	h.transition(c, h.eventSvc.Approve)
}

// Retract withdraws the caller authority's approval.
// POST /api/v1/events/:id/retract
func (h *EventHandler) Retract(c *gin.Context) {
	h.transition(c, h.eventSvc.Retract)
}

// Finalize makes results publicly visible.
// POST /api/v1/events/:id/finalize
func (h *EventHandler) Finalize(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.eventSvc.Finalize(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrApprovalIncomplete):
			response.Conflict(c, 13004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Unfinalize withdraws public visibility so results can be edited.
// POST /api/v1/events/:id/unfinalize
func (h *EventHandler) Unfinalize(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.eventSvc.Unfinalize(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 13001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// transition shares the Approve/Retract plumbing.
func (h *EventHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, id string, role model.Role, callerID string) (*dto.EventResponse, error),
) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), c.Param("id"), role, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrNotApprover):
			response.Forbidden(c, 10003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
