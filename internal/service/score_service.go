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

// ── score module errors ──

var (
	ErrScoreNotFound  = errors.New("score record not found")
	ErrScoreFinalized = errors.New("score record is finalized and immutable")
)

// ScoreService manages EventScore records. Each record carries its own
// approval gate, a second instance of the same two-authority machine that
// gates events.
type ScoreService interface {
	Create(ctx context.Context, req *dto.CreateEventScoreRequest, callerID string) (*dto.EventScoreResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventScoreResponse, error)
	List(ctx context.Context, req *dto.EventScoreListRequest) ([]dto.EventScoreResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventScoreRequest, callerID string) (*dto.EventScoreResponse, error)

	Approve(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventScoreResponse, error)
	Retract(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventScoreResponse, error)
	Finalize(ctx context.Context, id string, callerID string) (*dto.EventScoreResponse, error)
}

type scoreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScoreService creates the ScoreService.
func NewScoreService(repo *repository.Repository, logger *zap.Logger) ScoreService {
	return &scoreService{repo: repo, logger: logger}
}

func (s *scoreService) Create(ctx context.Context, req *dto.CreateEventScoreRequest, callerID string) (*dto.EventScoreResponse, error) {
	if _, err := s.repo.Event.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("look up event failed", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Hostel.GetByID(ctx, req.HostelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("look up hostel failed", zap.Error(err))
		return nil, err
	}

	score := &model.EventScore{
		EventID:  req.EventID,
		HostelID: req.HostelID,
		UserID:   req.UserID,
		TeamID:   req.TeamID,
		Score:    req.Score,
		Remarks:  req.Remarks,
	}
	score.CreatedBy = &callerID
	score.UpdatedBy = &callerID

	if err := s.repo.EventScore.Create(ctx, score); err != nil {
		s.logger.Error("create score record failed", zap.Error(err))
		return nil, err
	}

	return toEventScoreResponse(score), nil
}

func (s *scoreService) GetByID(ctx context.Context, id string) (*dto.EventScoreResponse, error) {
	score, err := s.getScore(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEventScoreResponse(score), nil
}

func (s *scoreService) List(ctx context.Context, req *dto.EventScoreListRequest) ([]dto.EventScoreResponse, error) {
	filters := &repository.EventScoreFilters{
		EventID:  req.EventID,
		HostelID: req.HostelID,
	}
	scores, err := s.repo.EventScore.List(ctx, filters)
	if err != nil {
		s.logger.Error("list score records failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventScoreResponse, 0, len(scores))
	for i := range scores {
		result = append(result, *toEventScoreResponse(&scores[i]))
	}
	return result, nil
}

// Update edits score and remarks. Rejected once the record is finalized.
func (s *scoreService) Update(ctx context.Context, id string, req *dto.UpdateEventScoreRequest, callerID string) (*dto.EventScoreResponse, error) {
	score, err := s.getScore(ctx, id)
	if err != nil {
		return nil, err
	}

	if score.FinalApproved {
		return nil, ErrScoreFinalized
	}

	if req.Score != nil {
		score.Score = *req.Score
	}
	if req.Remarks != nil {
		score.Remarks = *req.Remarks
	}
	score.UpdatedBy = &callerID

	if err := s.repo.EventScore.Update(ctx, score); err != nil {
		s.logger.Error("update score record failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventScoreResponse(score), nil
}

// ────────────────────── approval transitions ──────────────────────

func (s *scoreService) Approve(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventScoreResponse, error) {
	authority, ok := callerRole.Authority()
	if !ok {
		return nil, ErrNotApprover
	}

	score, err := s.getScore(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := score.Approve(authority); err != nil {
		return nil, err
	}
	score.UpdatedBy = &callerID

	if err := s.repo.EventScore.Update(ctx, score); err != nil {
		s.logger.Error("persist score approval failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventScoreResponse(score), nil
}

func (s *scoreService) Retract(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventScoreResponse, error) {
	authority, ok := callerRole.Authority()
	if !ok {
		return nil, ErrNotApprover
	}

	score, err := s.getScore(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := score.Retract(authority); err != nil {
		return nil, err
	}
	score.UpdatedBy = &callerID

	if err := s.repo.EventScore.Update(ctx, score); err != nil {
		s.logger.Error("persist score retraction failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventScoreResponse(score), nil
}

func (s *scoreService) Finalize(ctx context.Context, id string, callerID string) (*dto.EventScoreResponse, error) {
	score, err := s.getScore(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := score.Finalize(); err != nil {
		return nil, ErrApprovalIncomplete
	}
	score.UpdatedBy = &callerID

	if err := s.repo.EventScore.Update(ctx, score); err != nil {
		s.logger.Error("persist score finalize failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventScoreResponse(score), nil
}

// ── helpers ──

func (s *scoreService) getScore(ctx context.Context, id string) (*model.EventScore, error) {
	score, err := s.repo.EventScore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		s.logger.Error("look up score record failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return score, nil
}

func toEventScoreResponse(score *model.EventScore) *dto.EventScoreResponse {
	resp := &dto.EventScoreResponse{
		ID:            score.EventScoreID,
		EventID:       score.EventID,
		HostelID:      score.HostelID,
		UserID:        score.UserID,
		TeamID:        score.TeamID,
		Score:         score.Score,
		Remarks:       score.Remarks,
		TUSCApproved:  score.TUSCApproved,
		DSWApproved:   score.DSWApproved,
		FinalApproved: score.FinalApproved,
	}
	if score.Hostel != nil {
		resp.HostelName = score.Hostel.Name
	}
	return resp
}
