package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

// EventScoreFilters narrows the score record list query.
type EventScoreFilters struct {
	EventID  string
	HostelID string
}

// EventScoreRepository is the event_scores data-access interface.
type EventScoreRepository interface {
	Create(ctx context.Context, score *model.EventScore) error
	GetByID(ctx context.Context, id string) (*model.EventScore, error)
	List(ctx context.Context, filters *EventScoreFilters) ([]model.EventScore, error)
	Update(ctx context.Context, score *model.EventScore) error
}

type eventScoreRepo struct {
	db *gorm.DB
}

// NewEventScoreRepo creates the GORM-backed EventScoreRepository.
func NewEventScoreRepo(db *gorm.DB) EventScoreRepository {
	return &eventScoreRepo{db: db}
}

func (r *eventScoreRepo) Create(ctx context.Context, score *model.EventScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *eventScoreRepo) GetByID(ctx context.Context, id string) (*model.EventScore, error) {
	var score model.EventScore
	err := r.db.WithContext(ctx).
		Preload("Hostel").
		Where("event_score_id = ?", id).
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *eventScoreRepo) List(ctx context.Context, filters *EventScoreFilters) ([]model.EventScore, error) {
	q := r.db.WithContext(ctx).Preload("Hostel")

	if filters != nil {
		if filters.EventID != "" {
			q = q.Where("event_id = ?", filters.EventID)
		}
		if filters.HostelID != "" {
			q = q.Where("hostel_id = ?", filters.HostelID)
		}
	}

	var scores []model.EventScore
	err := q.Order("score DESC").Find(&scores).Error
	return scores, err
}

func (r *eventScoreRepo) Update(ctx context.Context, score *model.EventScore) error {
	return r.db.WithContext(ctx).Save(score).Error
}
