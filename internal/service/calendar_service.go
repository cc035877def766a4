package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
)

// defaultEventDuration is used for the DTEND of events, which store a single
// start timestamp.
const defaultEventDuration = 2 * time.Hour

// CalendarService serves the tournament schedule as an iCalendar feed so
// students can subscribe from their calendar apps.
type CalendarService interface {
	// UpcomingEvents serializes events from now onward as an ICS document.
	UpcomingEvents(ctx context.Context) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService creates the CalendarService.
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) UpcomingEvents(ctx context.Context) (string, error) {
	events, err := s.repo.Event.ListUpcoming(ctx, time.Now())
	if err != nil {
		s.logger.Error("list upcoming events failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventhub//tournament schedule//EN")
	cal.SetName("Inter-Hostel Tournament Schedule")

	for i := range events {
		e := &events[i]

		vevent := cal.AddEvent(fmt.Sprintf("%s@eventhub", e.EventID))
		vevent.SetCreatedTime(e.CreatedAt)
		vevent.SetDtStampTime(e.UpdatedAt)
		vevent.SetStartAt(e.Date)
		vevent.SetEndAt(e.Date.Add(defaultEventDuration))
		vevent.SetSummary(e.Name)
		if e.Venue != "" {
			vevent.SetLocation(e.Venue)
		}
		if e.Description != "" {
			vevent.SetDescription(e.Description)
		}
	}

	return cal.Serialize(), nil
}
