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

// ── hostel module errors ──

var (
	ErrHostelNotFound     = errors.New("hostel not found")
	ErrHostelNameExists   = errors.New("hostel name already exists")
	ErrHostelHasResidents = errors.New("hostel has residents and cannot be deleted")
)

// HostelService is the hostel business interface.
type HostelService interface {
	Create(ctx context.Context, req *dto.CreateHostelRequest, callerID string) (*dto.HostelResponse, error)
	GetByID(ctx context.Context, id string) (*dto.HostelResponse, error)
	List(ctx context.Context) ([]dto.HostelResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateHostelRequest, callerID string) (*dto.HostelResponse, error)
	Delete(ctx context.Context, id string) error
}

type hostelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHostelService creates the HostelService.
func NewHostelService(repo *repository.Repository, logger *zap.Logger) HostelService {
	return &hostelService{repo: repo, logger: logger}
}

func (s *hostelService) Create(ctx context.Context, req *dto.CreateHostelRequest, callerID string) (*dto.HostelResponse, error) {
	existing, err := s.repo.Hostel.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("look up hostel failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrHostelNameExists
	}

	hostel := &model.Hostel{
		Name:   req.Name,
		Gender: model.HostelGender(req.Gender),
		Warden: req.Warden,
	}
	hostel.CreatedBy = &callerID
	hostel.UpdatedBy = &callerID

	if err := s.repo.Hostel.Create(ctx, hostel); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrHostelNameExists
		}
		s.logger.Error("create hostel failed", zap.Error(err))
		return nil, err
	}

	return s.toHostelResponse(ctx, hostel), nil
}

func (s *hostelService) GetByID(ctx context.Context, id string) (*dto.HostelResponse, error) {
	hostel, err := s.repo.Hostel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("look up hostel failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toHostelResponse(ctx, hostel), nil
}

func (s *hostelService) List(ctx context.Context) ([]dto.HostelResponse, error) {
	hostels, err := s.repo.Hostel.List(ctx)
	if err != nil {
		s.logger.Error("list hostels failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.HostelResponse, 0, len(hostels))
	for i := range hostels {
		result = append(result, *s.toHostelResponse(ctx, &hostels[i]))
	}
	return result, nil
}

func (s *hostelService) Update(ctx context.Context, id string, req *dto.UpdateHostelRequest, callerID string) (*dto.HostelResponse, error) {
	hostel, err := s.repo.Hostel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("look up hostel failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil && *req.Name != hostel.Name {
		existing, err := s.repo.Hostel.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrHostelNameExists
		}
		hostel.Name = *req.Name
	}
	if req.Warden != nil {
		hostel.Warden = *req.Warden
	}

	hostel.UpdatedBy = &callerID

	if err := s.repo.Hostel.Update(ctx, hostel); err != nil {
		s.logger.Error("update hostel failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toHostelResponse(ctx, hostel), nil
}

func (s *hostelService) Delete(ctx context.Context, id string) error {
	hostel, err := s.repo.Hostel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHostelNotFound
		}
		s.logger.Error("look up hostel failed", zap.String("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.Hostel.CountResidents(ctx, hostel.HostelID)
	if err != nil {
		s.logger.Error("count residents failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrHostelHasResidents
	}

	if err := s.repo.Hostel.Delete(ctx, id); err != nil {
		s.logger.Error("delete hostel failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *hostelService) toHostelResponse(ctx context.Context, hostel *model.Hostel) *dto.HostelResponse {
	count, _ := s.repo.Hostel.CountResidents(ctx, hostel.HostelID)
	return &dto.HostelResponse{
		ID:            hostel.HostelID,
		Name:          hostel.Name,
		Gender:        string(hostel.Gender),
		Warden:        hostel.Warden,
		ResidentCount: count,
	}
}
