package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
)

// ── participation module errors ──

var (
	ErrParticipationNotFound = errors.New("participation not found")
	ErrAlreadyRegistered     = errors.New("subject is already registered for this event")
	ErrModeMismatch          = errors.New("registration subject does not match the event mode")
	ErrSubjectNotStudent     = errors.New("only student accounts can participate in events")
)

// SubjectKind tags the registration subject.
type SubjectKind string

const (
	SubjectUser SubjectKind = "user"
	SubjectTeam SubjectKind = "team"
)

// Subject is the registration subject: exactly one user or one team. The
// handler constructs it from the request, so the both/neither shapes never
// reach the registrar.
type Subject struct {
	Kind SubjectKind
	ID   string
}

// ParticipationService is the registrar: it creates, mutates and cancels
// participation records under the event's approval gate.
type ParticipationService interface {
	Register(ctx context.Context, eventID string, subject Subject, callerID string) (*dto.ParticipationResponse, error)
	UpdateResult(ctx context.Context, id string, req *dto.UpdateResultRequest, callerID string) (*dto.ParticipationResponse, error)
	Cancel(ctx context.Context, id string) error
}

type participationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewParticipationService creates the ParticipationService.
func NewParticipationService(repo *repository.Repository, logger *zap.Logger) ParticipationService {
	return &participationService{repo: repo, logger: logger}
}

// Register checks event existence, mode agreement and subject validity,
// derives the hostel for a user subject, and inserts with defaults
// position=participant, score=0. The existence pre-check is an advisory fast
// path; the partial unique indexes close the race and a duplicate-key insert
// failure is reported as the same conflict.
func (s *participationService) Register(ctx context.Context, eventID string, subject Subject, callerID string) (*dto.ParticipationResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("look up event failed", zap.Error(err))
		return nil, err
	}

	p := &model.Participation{
		EventID:  event.EventID,
		Position: model.PositionParticipant,
		Score:    0,
	}
	p.CreatedBy = &callerID
	p.UpdatedBy = &callerID

	switch subject.Kind {
	case SubjectUser:
		if event.Mode != model.ModeSolo {
			return nil, ErrModeMismatch
		}

		user, err := s.repo.User.GetByID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			s.logger.Error("look up user failed", zap.Error(err))
			return nil, err
		}
		if user.Role != model.RoleStudent || user.Student == nil {
			return nil, ErrSubjectNotStudent
		}

		exists, err := s.repo.Participation.ExistsByEventUser(ctx, event.EventID, user.UserID)
		if err != nil {
			s.logger.Error("registration pre-check failed", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, ErrAlreadyRegistered
		}

		p.UserID = &user.UserID
		p.HostelID = user.Student.HostelID

	case SubjectTeam:
		if event.Mode != model.ModeTeam {
			return nil, ErrModeMismatch
		}

		team, err := s.repo.Team.GetByID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeamNotFound
			}
			s.logger.Error("look up team failed", zap.Error(err))
			return nil, err
		}

		exists, err := s.repo.Participation.ExistsByEventTeam(ctx, event.EventID, team.TeamID)
		if err != nil {
			s.logger.Error("registration pre-check failed", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, ErrAlreadyRegistered
		}

		p.TeamID = &team.TeamID

	default:
		return nil, ErrModeMismatch
	}

	if err := s.repo.Participation.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against a concurrent registration
			return nil, ErrAlreadyRegistered
		}
		s.logger.Error("create participation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("participation registered",
		zap.String("event_id", event.EventID),
		zap.String("subject_kind", string(subject.Kind)),
		zap.String("subject_id", subject.ID),
	)
	return toParticipationResponse(p), nil
}

// UpdateResult sets position and/or score. Rejected once the governing event
// is finalized; an explicit unfinalize is required first.
func (s *participationService) UpdateResult(ctx context.Context, id string, req *dto.UpdateResultRequest, callerID string) (*dto.ParticipationResponse, error) {
	p, err := s.getParticipation(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Event != nil && p.Event.FinalApproved {
		return nil, ErrEventFinalized
	}

	if req.Position != nil {
		p.Position = model.Position(*req.Position)
	}
	if req.Score != nil {
		p.Score = *req.Score
	}
	p.UpdatedBy = &callerID

	if err := s.repo.Participation.Update(ctx, p); err != nil {
		s.logger.Error("update participation failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toParticipationResponse(p), nil
}

// Cancel deletes a registration. Finalized events are immutable, so their
// registrations cannot be cancelled either.
func (s *participationService) Cancel(ctx context.Context, id string) error {
	p, err := s.getParticipation(ctx, id)
	if err != nil {
		return err
	}

	if p.Event != nil && p.Event.FinalApproved {
		return ErrEventFinalized
	}

	if err := s.repo.Participation.Delete(ctx, id); err != nil {
		s.logger.Error("delete participation failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *participationService) getParticipation(ctx context.Context, id string) (*model.Participation, error) {
	p, err := s.repo.Participation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipationNotFound
		}
		s.logger.Error("look up participation failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func toParticipationResponse(p *model.Participation) *dto.ParticipationResponse {
	return &dto.ParticipationResponse{
		ID:       p.ParticipationID,
		EventID:  p.EventID,
		UserID:   p.UserID,
		TeamID:   p.TeamID,
		HostelID: p.HostelID,
		Position: string(p.Position),
		Score:    p.Score,
	}
}
