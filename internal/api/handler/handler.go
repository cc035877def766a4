package handler

import "github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/service"

// Handler aggregates every module handler.
type Handler struct {
	Auth          *AuthHandler
	Hostel        *HostelHandler
	Event         *EventHandler
	Team          *TeamHandler
	Participation *ParticipationHandler
	Score         *ScoreHandler
	Result        *ResultHandler
	Export        *ExportHandler
	Calendar      *CalendarHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		Hostel:        NewHostelHandler(svc.Hostel),
		Event:         NewEventHandler(svc.Event),
		Team:          NewTeamHandler(svc.Team),
		Participation: NewParticipationHandler(svc.Participation),
		Score:         NewScoreHandler(svc.Score),
		Result:        NewResultHandler(svc.Result),
		Export:        NewExportHandler(svc.Export),
		Calendar:      NewCalendarHandler(svc.Calendar),
	}
}
