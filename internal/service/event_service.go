package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
)

// ── event module errors ──

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventReferenced    = errors.New("event has registrations or scores and cannot be deleted")
	ErrEventFinalized     = errors.New("event results are finalized and immutable")
	ErrNotApprover        = errors.New("caller role holds no approval authority")
	ErrApprovalIncomplete = errors.New("event needs both TUSC and DSW approval before it can be finalized")
)

// EventService is the event business interface, including the event-level
// approval state machine.
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string) (*dto.EventResponse, error)
	Delete(ctx context.Context, id string) error

	// Approve sets the approval flag of the caller's authority. Idempotent.
	Approve(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventResponse, error)
	// Retract clears the approval flag of the caller's authority and always
	// drops final approval with it.
	Retract(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventResponse, error)
	// Finalize marks results publicly visible; fails without both approvals.
	Finalize(ctx context.Context, id string, callerID string) (*dto.EventResponse, error)
	// Unfinalize withdraws public visibility so results can be edited again.
	Unfinalize(ctx context.Context, id string, callerID string) (*dto.EventResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService creates the EventService.
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// ────────────────────── CRUD ──────────────────────

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.EventResponse, error) {
	event := &model.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		Mode:        model.EventMode(req.Mode),
		Category:    model.EventCategory(req.Category),
	}
	event.CreatedBy = &callerID
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return nil, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventResponse, int64, error) {
	req.Normalize()

	filters := &repository.EventListFilters{
		Category:      req.Category,
		Mode:          req.Mode,
		FinalizedOnly: req.FinalizedOnly,
	}
	events, total, err := s.repo.Event.List(ctx, filters, req.Offset(), req.PageSize)
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toEventResponse(&events[i]))
	}
	return result, total, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.FinalApproved {
		return nil, ErrEventFinalized
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("update event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.repo.Event.CountReferences(ctx, event.EventID)
	if err != nil {
		s.logger.Error("count event references failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if refs > 0 {
		return ErrEventReferenced
	}

	if err := s.repo.Event.Delete(ctx, id); err != nil {
		s.logger.Error("delete event failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── approval transitions ──────────────────────

func (s *eventService) Approve(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventResponse, error) {
	authority, ok := callerRole.Authority()
	if !ok {
		return nil, ErrNotApprover
	}

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := event.Approve(authority); err != nil {
		return nil, err
	}
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("persist approval failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("event approved",
		zap.String("event_id", id),
		zap.String("authority", string(authority)),
	)
	return toEventResponse(event), nil
}

func (s *eventService) Retract(ctx context.Context, id string, callerRole model.Role, callerID string) (*dto.EventResponse, error) {
	authority, ok := callerRole.Authority()
	if !ok {
		return nil, ErrNotApprover
	}

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := event.Retract(authority); err != nil {
		return nil, err
	}
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("persist retraction failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("event approval retracted",
		zap.String("event_id", id),
		zap.String("authority", string(authority)),
	)
	return toEventResponse(event), nil
}

func (s *eventService) Finalize(ctx context.Context, id string, callerID string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := event.Finalize(); err != nil {
		return nil, ErrApprovalIncomplete
	}
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("persist finalize failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("event finalized", zap.String("event_id", id))
	return toEventResponse(event), nil
}

func (s *eventService) Unfinalize(ctx context.Context, id string, callerID string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Unfinalize()
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("persist unfinalize failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("event unfinalized", zap.String("event_id", id))
	return toEventResponse(event), nil
}

// ── helpers ──

func (s *eventService) getEvent(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("look up event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func toEventResponse(event *model.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:            event.EventID,
		Name:          event.Name,
		Description:   event.Description,
		Date:          event.Date.Format(time.RFC3339),
		Venue:         event.Venue,
		Mode:          string(event.Mode),
		Category:      string(event.Category),
		TUSCApproved:  event.TUSCApproved,
		DSWApproved:   event.DSWApproved,
		FinalApproved: event.FinalApproved,
	}
}
