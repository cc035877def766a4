package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

type teamFixture struct {
	svc   TeamService
	mocks *mockRepos
}

func newTeamFixture(t *testing.T) *teamFixture {
	t.Helper()
	repo, mocks := newMockRepository()
	f := &teamFixture{svc: NewTeamService(repo, zap.NewNop()), mocks: mocks}

	f.mocks.hostels.hostels["hostel-boys-a"] = &model.Hostel{HostelID: "hostel-boys-a", Name: "Brahmaputra", Gender: model.HostelBoys}
	f.mocks.hostels.hostels["hostel-boys-b"] = &model.Hostel{HostelID: "hostel-boys-b", Name: "Umiam", Gender: model.HostelBoys}
	f.mocks.hostels.hostels["hostel-girls-a"] = &model.Hostel{HostelID: "hostel-girls-a", Name: "Dhansiri", Gender: model.HostelGirls}
	return f
}

// seedStudent registers a student living in hostelID; empty hostelID means
// no affiliation.
func (f *teamFixture) seedStudent(studentID, hostelID string) {
	s := &model.Student{StudentID: studentID, UserID: "user-" + studentID, RollNo: "roll-" + studentID}
	if hostelID != "" {
		s.HostelID = &hostelID
		s.Hostel = f.mocks.hostels.hostels[hostelID]
	}
	f.mocks.students.students[studentID] = s
}

func (f *teamFixture) createTeam(t *testing.T, name string) string {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), &dto.CreateTeamRequest{Name: name}, "u-1")
	if err != nil {
		t.Fatalf("Create team: %v", err)
	}
	return resp.ID
}

func (f *teamFixture) addMember(teamID, studentID, category string) error {
	_, err := f.svc.AddMember(context.Background(), teamID, &dto.AddMemberRequest{
		StudentID: studentID,
		Category:  category,
	}, "u-1")
	return err
}

func TestTeamCreateDuplicateName(t *testing.T) {
	f := newTeamFixture(t)
	f.createTeam(t, "Hurricanes")

	if _, err := f.svc.Create(context.Background(), &dto.CreateTeamRequest{Name: "Hurricanes"}, "u-1"); !errors.Is(err, ErrTeamNameExists) {
		t.Fatalf("expected ErrTeamNameExists, got %v", err)
	}
}

func TestAddMemberSportsSingleHostel(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Football XI")
	f.seedStudent("s1", "hostel-boys-a")
	f.seedStudent("s2", "hostel-boys-a")
	f.seedStudent("s3", "hostel-boys-b")

	if err := f.addMember(teamID, "s1", "sports"); err != nil {
		t.Fatalf("first member sets the hostel precedent: %v", err)
	}
	if err := f.addMember(teamID, "s2", "sports"); err != nil {
		t.Fatalf("same-hostel member: %v", err)
	}
	if err := f.addMember(teamID, "s3", "sports"); !errors.Is(err, ErrSportsHostelMismatch) {
		t.Fatalf("cross-hostel sports member: expected ErrSportsHostelMismatch, got %v", err)
	}
}

func TestAddMemberCulturalOnePerGenderPartition(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Dramatics Club")
	f.seedStudent("s1", "hostel-boys-a")
	f.seedStudent("s2", "hostel-girls-a")
	f.seedStudent("s3", "hostel-boys-b")

	if err := f.addMember(teamID, "s1", "cultural"); err != nil {
		t.Fatalf("first boys hostel: %v", err)
	}
	// a girls hostel uses the other partition, so it never conflicts
	if err := f.addMember(teamID, "s2", "cultural"); err != nil {
		t.Fatalf("girls hostel alongside boys hostel: %v", err)
	}
	if err := f.addMember(teamID, "s3", "cultural"); !errors.Is(err, ErrCulturalHostelConflict) {
		t.Fatalf("second boys hostel: expected ErrCulturalHostelConflict, got %v", err)
	}
}

func TestAddMemberWithoutHostelRejected(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Chess Club")
	f.seedStudent("s1", "")

	for _, category := range []string{"sports", "cultural"} {
		if err := f.addMember(teamID, "s1", category); !errors.Is(err, ErrHostelRequired) {
			t.Errorf("category %s: expected ErrHostelRequired, got %v", category, err)
		}
	}
}

func TestAddMemberDuplicatePerCategory(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Allrounders")
	f.seedStudent("s1", "hostel-boys-a")

	if err := f.addMember(teamID, "s1", "sports"); err != nil {
		t.Fatalf("first addition: %v", err)
	}
	if err := f.addMember(teamID, "s1", "sports"); !errors.Is(err, ErrAlreadyTeamMember) {
		t.Fatalf("same category twice: expected ErrAlreadyTeamMember, got %v", err)
	}
	// the same student may join the same team under the other category
	if err := f.addMember(teamID, "s1", "cultural"); err != nil {
		t.Fatalf("other category: %v", err)
	}
}

func TestAddMemberCategoriesIsolated(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Mixed Roster")
	f.seedStudent("s1", "hostel-boys-a")
	f.seedStudent("s2", "hostel-boys-b")

	if err := f.addMember(teamID, "s1", "cultural"); err != nil {
		t.Fatalf("cultural member: %v", err)
	}
	// cultural memberships must not constrain the sports roster
	if err := f.addMember(teamID, "s2", "sports"); err != nil {
		t.Fatalf("sports member alongside cultural member from another hostel: %v", err)
	}
}

func TestAddMemberUnknownStudent(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Ghost Team")

	if err := f.addMember(teamID, "missing", "sports"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestRemoveMemberReopensHostelSlot(t *testing.T) {
	f := newTeamFixture(t)
	teamID := f.createTeam(t, "Relay Four")
	f.seedStudent("s1", "hostel-boys-a")
	f.seedStudent("s2", "hostel-boys-b")
	ctx := context.Background()

	if err := f.addMember(teamID, "s1", "sports"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.svc.RemoveMember(ctx, teamID, "s1"); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	// the roster is empty again, so any hostel sets a new precedent
	if err := f.addMember(teamID, "s2", "sports"); err != nil {
		t.Fatalf("add after removal: %v", err)
	}
}
