package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

// HostelHandler serves the hostel endpoints.
type HostelHandler struct {
	hostelSvc service.HostelService
}

// NewHostelHandler creates the HostelHandler.
func NewHostelHandler(hostelSvc service.HostelService) *HostelHandler {
	return &HostelHandler{hostelSvc: hostelSvc}
}

// Create registers a hostel.
// POST /api/v1/hostels
func (h *HostelHandler) Create(c *gin.Context) {
	var req dto.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.hostelSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrHostelNameExists) {
			response.Conflict(c, 12001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get returns one hostel.
// GET /api/v1/hostels/:id
func (h *HostelHandler) Get(c *gin.Context) {
	result, err := h.hostelSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHostelNotFound) {
			response.NotFound(c, 12002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List returns all hostels.
// GET /api/v1/hostels
func (h *HostelHandler) List(c *gin.Context) {
	result, err := h.hostelSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update edits a hostel.
// PUT /api/v1/hostels/:id
func (h *HostelHandler) Update(c *gin.Context) {
	var req dto.UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.hostelSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHostelNotFound):
			response.NotFound(c, 12002, err.Error())
		case errors.Is(err, service.ErrHostelNameExists):
			response.Conflict(c, 12001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete removes an empty hostel.
// DELETE /api/v1/hostels/:id
func (h *HostelHandler) Delete(c *gin.Context) {
	if err := h.hostelSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrHostelNotFound):
			response.NotFound(c, 12002, err.Error())
		case errors.Is(err, service.ErrHostelHasResidents):
			response.Conflict(c, 12003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
