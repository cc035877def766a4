package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

// ResultHandler serves the public results projection.
type ResultHandler struct {
	resultSvc service.ResultService
}

// NewResultHandler creates the ResultHandler.
func NewResultHandler(resultSvc service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// EventResults returns the ordered result set for one event. Entries stay
// empty until the event is finalized.
// GET /api/v1/results/:eventId
func (h *ResultHandler) EventResults(c *gin.Context) {
	result, err := h.resultSvc.EventResults(c.Request.Context(), c.Param("eventId"))
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

// AllResults returns results for every finalized event.
// GET /api/v1/results
func (h *ResultHandler) AllResults(c *gin.Context) {
	result, err := h.resultSvc.AllResults(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
