package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

// TeamRepository is the teams and memberships data-access interface.
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id string) (*model.Team, error)
	GetByName(ctx context.Context, name string) (*model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
	AddMember(ctx context.Context, membership *model.TeamMembership) error
	RemoveMember(ctx context.Context, teamID, studentID string) error
	// ListMembers returns all memberships of the team with student and hostel
	// preloaded, across categories.
	ListMembers(ctx context.Context, teamID string) ([]model.TeamMembership, error)
}

type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepo creates the GORM-backed TeamRepository.
func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", id).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) GetByName(ctx context.Context, name string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepo) AddMember(ctx context.Context, membership *model.TeamMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *teamRepo) RemoveMember(ctx context.Context, teamID, studentID string) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND student_id = ?", teamID, studentID).
		Delete(&model.TeamMembership{}).Error
}

func (r *teamRepo) ListMembers(ctx context.Context, teamID string) ([]model.TeamMembership, error) {
	var members []model.TeamMembership
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.User").
		Preload("Student.Hostel").
		Where("team_id = ?", teamID).
		Find(&members).Error
	return members, err
}
