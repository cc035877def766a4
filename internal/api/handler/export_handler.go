package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the results export endpoint.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportResults streams the finalized results of one event as .xlsx.
// GET /api/v1/export/results/:eventId
func (h *ExportHandler) ExportResults(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportResults(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrExportNotFinalized):
			response.Conflict(c, 17001, err.Error())
		case errors.Is(err, service.ErrExportNoEntries):
			response.Conflict(c, 17002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
