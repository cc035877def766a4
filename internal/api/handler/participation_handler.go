package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

// ParticipationHandler serves the registration endpoints. It is the single
// place that turns the request payload into a registration subject, so the
// both/neither shapes never reach the service.
type ParticipationHandler struct {
	participationSvc service.ParticipationService
}

// NewParticipationHandler creates the ParticipationHandler.
func NewParticipationHandler(participationSvc service.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{participationSvc: participationSvc}
}

// Register creates a participation for exactly one user or one team.
// POST /api/v1/participations
func (h *ParticipationHandler) Register(c *gin.Context) {
	var req dto.RegisterParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	var subject service.Subject
	switch {
	case req.UserID != nil && req.TeamID != nil:
		response.BadRequest(c, 10001, "provide either user_id or team_id, not both")
		return
	case req.UserID != nil:
		subject = service.Subject{Kind: service.SubjectUser, ID: *req.UserID}
	case req.TeamID != nil:
		subject = service.Subject{Kind: service.SubjectTeam, ID: *req.TeamID}
	default:
		response.BadRequest(c, 10001, "either user_id or team_id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.participationSvc.Register(c.Request.Context(), req.EventID, subject, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11005, err.Error())
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 14002, err.Error())
		case errors.Is(err, service.ErrModeMismatch):
			response.BadRequest(c, 15001, err.Error())
		case errors.Is(err, service.ErrSubjectNotStudent):
			response.UnprocessableEntity(c, 15002, err.Error())
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.Conflict(c, 15003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// UpdateResult sets a participation's position and/or score.
// PUT /api/v1/participations/:id/result
func (h *ParticipationHandler) UpdateResult(c *gin.Context) {
	var req dto.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.participationSvc.UpdateResult(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipationNotFound):
			response.NotFound(c, 15004, err.Error())
		case errors.Is(err, service.ErrEventFinalized):
			response.Conflict(c, 13002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Cancel removes a registration.
// DELETE /api/v1/participations/:id
func (h *ParticipationHandler) Cancel(c *gin.Context) {
	if err := h.participationSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrParticipationNotFound):
			response.NotFound(c, 15004, err.Error())
		case errors.Is(err, service.ErrEventFinalized):
			response.Conflict(c, 13002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
