package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

// ParticipationRepository is the participations data-access interface.
// Create relies on the partial unique indexes to close the check-then-insert
// race: a concurrent duplicate surfaces as gorm.ErrDuplicatedKey.
type ParticipationRepository interface {
	Create(ctx context.Context, p *model.Participation) error
	GetByID(ctx context.Context, id string) (*model.Participation, error)
	ExistsByEventUser(ctx context.Context, eventID, userID string) (bool, error)
	ExistsByEventTeam(ctx context.Context, eventID, teamID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Participation, error)
	Update(ctx context.Context, p *model.Participation) error
	Delete(ctx context.Context, id string) error
}

type participationRepo struct {
	db *gorm.DB
}

// NewParticipationRepo creates the GORM-backed ParticipationRepository.
func NewParticipationRepo(db *gorm.DB) ParticipationRepository {
	return &participationRepo{db: db}
}

func (r *participationRepo) Create(ctx context.Context, p *model.Participation) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *participationRepo) GetByID(ctx context.Context, id string) (*model.Participation, error) {
	var p model.Participation
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("participation_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participationRepo) ExistsByEventUser(ctx context.Context, eventID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Participation{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *participationRepo) ExistsByEventTeam(ctx context.Context, eventID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Participation{}).
		Where("event_id = ? AND team_id = ?", eventID, teamID).
		Count(&count).Error
	return count > 0, err
}

func (r *participationRepo) ListByEvent(ctx context.Context, eventID string) ([]model.Participation, error) {
	var list []model.Participation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Team").
		Preload("Hostel").
		Where("event_id = ?", eventID).
		Find(&list).Error
	return list, err
}

func (r *participationRepo) Update(ctx context.Context, p *model.Participation) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *participationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("participation_id = ?", id).
		Delete(&model.Participation{}).Error
}
