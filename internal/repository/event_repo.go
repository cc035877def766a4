package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

// EventListFilters narrows the event list query.
type EventListFilters struct {
	Category      string
	Mode          string
	FinalizedOnly bool
}

// EventRepository is the events data-access interface.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, filters *EventListFilters, offset, limit int) ([]model.Event, int64, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]model.Event, error)
	ListFinalized(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	// CountReferences counts participations and score records pointing at the
	// event; deletion is refused while it is non-zero.
	CountReferences(ctx context.Context, id string) (int64, error)
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo creates the GORM-backed EventRepository.
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, filters *EventListFilters, offset, limit int) ([]model.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Event{})

	if filters != nil {
		if filters.Category != "" {
			q = q.Where("category = ?", filters.Category)
		}
		if filters.Mode != "" {
			q = q.Where("mode = ?", filters.Mode)
		}
		if filters.FinalizedOnly {
			q = q.Where("final_approved = ?", true)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []model.Event
	err := q.Order("date ASC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error
	return events, total, err
}

func (r *eventRepo) ListUpcoming(ctx context.Context, from time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) ListFinalized(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("final_approved = ?", true).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.Event{}).Error
}

func (r *eventRepo) CountReferences(ctx context.Context, id string) (int64, error) {
	var participations int64
	if err := r.db.WithContext(ctx).
		Model(&model.Participation{}).
		Where("event_id = ?", id).
		Count(&participations).Error; err != nil {
		return 0, err
	}

	var scores int64
	if err := r.db.WithContext(ctx).
		Model(&model.EventScore{}).
		Where("event_id = ?", id).
		Count(&scores).Error; err != nil {
		return 0, err
	}

	return participations + scores, nil
}
