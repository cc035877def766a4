package service

import (
	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/config"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/jwt"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/redis"
)

// Service aggregates every business interface.
type Service struct {
	Auth          AuthService
	Hostel        HostelService
	Event         EventService
	Team          TeamService
	Participation ParticipationService
	Score         ScoreService
	Result        ResultService
	Export        ExportService
	Calendar      CalendarService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	resultSvc := NewResultService(repo, logger)

	return &Service{
		Auth:          NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Hostel:        NewHostelService(repo, logger),
		Event:         NewEventService(repo, logger),
		Team:          NewTeamService(repo, logger),
		Participation: NewParticipationService(repo, logger),
		Score:         NewScoreService(repo, logger),
		Result:        resultSvc,
		Export:        NewExportService(repo, resultSvc, logger),
		Calendar:      NewCalendarService(repo, logger),
	}
}
