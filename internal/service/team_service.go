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

// ── team module errors ──

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrTeamNameExists  = errors.New("team name already exists")
	ErrStudentNotFound = errors.New("student not found")
)

// TeamService is the team business interface. Member additions pass through
// the composition check before anything is persisted.
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest, callerID string) (*dto.TeamResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeamResponse, error)
	List(ctx context.Context) ([]dto.TeamResponse, error)
	AddMember(ctx context.Context, teamID string, req *dto.AddMemberRequest, callerID string) (*dto.TeamResponse, error)
	RemoveMember(ctx context.Context, teamID, studentID string) error
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService creates the TeamService.
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest, callerID string) (*dto.TeamResponse, error) {
	existing, err := s.repo.Team.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("look up team failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamNameExists
	}

	team := &model.Team{Name: req.Name}
	team.CreatedBy = &callerID
	team.UpdatedBy = &callerID

	if err := s.repo.Team.Create(ctx, team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTeamNameExists
		}
		s.logger.Error("create team failed", zap.Error(err))
		return nil, err
	}

	return &dto.TeamResponse{ID: team.TeamID, Name: team.Name}, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toTeamResponse(ctx, team)
}

func (s *teamService) List(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.repo.Team.List(ctx)
	if err != nil {
		s.logger.Error("list teams failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, dto.TeamResponse{ID: teams[i].TeamID, Name: teams[i].Name})
	}
	return result, nil
}

// AddMember runs the eligibility check over the team's current composition
// and persists the membership only when the addition is legal. The unique
// index on (team, student, category) backstops the duplicate guard.
func (s *teamService) AddMember(ctx context.Context, teamID string, req *dto.AddMemberRequest, callerID string) (*dto.TeamResponse, error) {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	student, err := s.repo.Student.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("look up student failed", zap.Error(err))
		return nil, err
	}

	members, err := s.repo.Team.ListMembers(ctx, team.TeamID)
	if err != nil {
		s.logger.Error("list team members failed", zap.Error(err))
		return nil, err
	}

	var candidate *HostelRef
	if student.HostelID != nil && student.Hostel != nil {
		candidate = &HostelRef{ID: *student.HostelID, Gender: student.Hostel.Gender}
	}

	category := model.EventCategory(req.Category)
	if err := CheckTeamAddition(category, student.StudentID, candidate, membershipViews(members)); err != nil {
		return nil, err
	}

	membership := &model.TeamMembership{
		TeamID:    team.TeamID,
		StudentID: student.StudentID,
		Category:  category,
	}
	membership.CreatedBy = &callerID
	membership.UpdatedBy = &callerID

	if err := s.repo.Team.AddMember(ctx, membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyTeamMember
		}
		s.logger.Error("add team member failed", zap.Error(err))
		return nil, err
	}

	return s.toTeamResponse(ctx, team)
}

func (s *teamService) RemoveMember(ctx context.Context, teamID, studentID string) error {
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.repo.Team.RemoveMember(ctx, teamID, studentID); err != nil {
		s.logger.Error("remove team member failed", zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *teamService) getTeam(ctx context.Context, id string) (*model.Team, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("look up team failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return team, nil
}

func (s *teamService) toTeamResponse(ctx context.Context, team *model.Team) (*dto.TeamResponse, error) {
	members, err := s.repo.Team.ListMembers(ctx, team.TeamID)
	if err != nil {
		s.logger.Error("list team members failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.TeamResponse{
		ID:      team.TeamID,
		Name:    team.Name,
		Members: make([]dto.TeamMemberResponse, 0, len(members)),
	}
	for _, m := range members {
		member := dto.TeamMemberResponse{
			StudentID: m.StudentID,
			Category:  string(m.Category),
		}
		if m.Student != nil {
			member.RollNo = m.Student.RollNo
			if m.Student.User != nil {
				member.Name = m.Student.User.Name
			}
			if m.Student.Hostel != nil {
				member.HostelName = m.Student.Hostel.Name
			}
		}
		resp.Members = append(resp.Members, member)
	}
	return resp, nil
}

// membershipViews projects persisted memberships into the composition-check
// input.
func membershipViews(members []model.TeamMembership) []MemberHostel {
	views := make([]MemberHostel, 0, len(members))
	for _, m := range members {
		view := MemberHostel{
			StudentID: m.StudentID,
			Category:  m.Category,
		}
		if m.Student != nil {
			view.HostelID = m.Student.HostelID
			if m.Student.Hostel != nil {
				view.HostelGender = m.Student.Hostel.Gender
			}
		}
		views = append(views, view)
	}
	return views
}
