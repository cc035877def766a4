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

// ScoreHandler serves the hostel score record endpoints.
type ScoreHandler struct {
	scoreSvc service.ScoreService
}

// NewScoreHandler creates the ScoreHandler.
func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// Create records a hostel-level score for an event.
// POST /api/v1/scores
func (h *ScoreHandler) Create(c *gin.Context) {
	var req dto.CreateEventScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scoreSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrHostelNotFound):
			response.NotFound(c, 12002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get returns one score record.
// GET /api/v1/scores/:id
func (h *ScoreHandler) Get(c *gin.Context) {
	result, err := h.scoreSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrScoreNotFound) {
			response.NotFound(c, 16001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List returns score records with filters.
// GET /api/v1/scores
func (h *ScoreHandler) List(c *gin.Context) {
	var req dto.EventScoreListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	result, err := h.scoreSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update edits a score record.
// PUT /api/v1/scores/:id
func (h *ScoreHandler) Update(c *gin.Context) {
	var req dto.UpdateEventScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scoreSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreNotFound):
			response.NotFound(c, 16001, err.Error())
		case errors.Is(err, service.ErrScoreFinalized):
			response.Conflict(c, 16002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Approve records the caller authority's approval on a score record.
// POST /api/v1/scores/:id/approve
func (h *ScoreHandler) Approve(c *gin.Context) {
	h.transition(c, h.scoreSvc.Approve)
}

// Retract withdraws the caller authority's approval on a score record.
// POST /api/v1/scores/:id/retract
func (h *ScoreHandler) Retract(c *gin.Context) {
	h.transition(c, h.scoreSvc.Retract)
}

// Finalize locks a score record after both approvals.
// POST /api/v1/scores/:id/finalize
func (h *ScoreHandler) Finalize(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scoreSvc.Finalize(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreNotFound):
			response.NotFound(c, 16001, err.Error())
		case errors.Is(err, service.ErrApprovalIncomplete):
			response.Conflict(c, 13004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

func (h *ScoreHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, id string, role model.Role, callerID string) (*dto.EventScoreResponse, error),
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
		case errors.Is(err, service.ErrScoreNotFound):
			response.NotFound(c, 16001, err.Error())
		case errors.Is(err, service.ErrNotApprover):
			response.Forbidden(c, 10003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
