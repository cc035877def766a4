package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

// TeamHandler serves the team endpoints. Composition-rule violations come
// back as 422 with the rule's reason string.
type TeamHandler struct {
	teamSvc service.TeamService
}

// NewTeamHandler creates the TeamHandler.
func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// Create registers a team.
// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.teamSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNameExists) {
			response.Conflict(c, 14001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get returns one team with its members.
// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	result, err := h.teamSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 14002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List returns all teams.
// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	result, err := h.teamSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// AddMember adds a student to the team under a category.
// POST /api/v1/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.teamSvc.AddMember(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 14002, err.Error())
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 14003, err.Error())
		case errors.Is(err, service.ErrAlreadyTeamMember):
			response.Conflict(c, 14004, err.Error())
		case errors.Is(err, service.ErrHostelRequired),
			errors.Is(err, service.ErrSportsHostelMismatch),
			errors.Is(err, service.ErrCulturalHostelConflict):
			// the reason string tells the caller which rule failed
			response.UnprocessableEntity(c, 14005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// RemoveMember removes a student from the team.
// DELETE /api/v1/teams/:id/members/:studentId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	err := h.teamSvc.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("studentId"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 14002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
