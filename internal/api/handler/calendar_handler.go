package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/response"
)

// CalendarHandler serves the public iCalendar schedule feed.
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler creates the CalendarHandler.
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// Feed returns upcoming events as text/calendar so calendar apps can
// subscribe to the schedule.
// GET /api/v1/events/calendar.ics
func (h *CalendarHandler) Feed(c *gin.Context) {
	ics, err := h.calendarSvc.UpcomingEvents(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tournament-schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
