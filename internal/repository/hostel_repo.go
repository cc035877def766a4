package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

// HostelRepository is the hostels data-access interface.
type HostelRepository interface {
	Create(ctx context.Context, hostel *model.Hostel) error
	GetByID(ctx context.Context, id string) (*model.Hostel, error)
	GetByName(ctx context.Context, name string) (*model.Hostel, error)
	List(ctx context.Context) ([]model.Hostel, error)
	Update(ctx context.Context, hostel *model.Hostel) error
	Delete(ctx context.Context, id string) error
	CountResidents(ctx context.Context, hostelID string) (int64, error)
}

type hostelRepo struct {
	db *gorm.DB
}

// NewHostelRepo creates the GORM-backed HostelRepository.
func NewHostelRepo(db *gorm.DB) HostelRepository {
	return &hostelRepo{db: db}
}

func (r *hostelRepo) Create(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Create(hostel).Error
}

func (r *hostelRepo) GetByID(ctx context.Context, id string) (*model.Hostel, error) {
	var hostel model.Hostel
	err := r.db.WithContext(ctx).
		Where("hostel_id = ?", id).
		First(&hostel).Error
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (r *hostelRepo) GetByName(ctx context.Context, name string) (*model.Hostel, error) {
	var hostel model.Hostel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&hostel).Error
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (r *hostelRepo) List(ctx context.Context) ([]model.Hostel, error) {
	var hostels []model.Hostel
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&hostels).Error
	return hostels, err
}

func (r *hostelRepo) Update(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Save(hostel).Error
}

func (r *hostelRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("hostel_id = ?", id).
		Delete(&model.Hostel{}).Error
}

func (r *hostelRepo) CountResidents(ctx context.Context, hostelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("hostel_id = ?", hostelID).
		Count(&count).Error
	return count, err
}
