package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

type participationFixture struct {
	svc   ParticipationService
	mocks *mockRepos
}

func newParticipationFixture() *participationFixture {
	repo, mocks := newMockRepository()
	return &participationFixture{
		svc:   NewParticipationService(repo, zap.NewNop()),
		mocks: mocks,
	}
}

func (f *participationFixture) seedEvent(mode model.EventMode) *model.Event {
	event := &model.Event{
		EventID:  "event-1",
		Name:     "Inter Hostel Debate",
		Date:     time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC),
		Mode:     mode,
		Category: model.CategoryCultural,
	}
	f.mocks.events.events[event.EventID] = event
	return event
}

func (f *participationFixture) seedStudentUser(userID, hostelID string) *model.User {
	var hostel *string
	if hostelID != "" {
		hostel = &hostelID
	}
	user := &model.User{
		UserID: userID,
		Name:   "Asha",
		Email:  userID + "@iitg.ac.in",
		Role:   model.RoleStudent,
		Student: &model.Student{
			StudentID: "student-" + userID,
			UserID:    userID,
			RollNo:    "21" + userID,
			HostelID:  hostel,
		},
	}
	f.mocks.users.users[userID] = user
	return user
}

func TestRegisterSoloDerivesHostel(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeSolo)
	f.seedStudentUser("u1", "hostel-brahmaputra")

	resp, err := f.svc.Register(context.Background(), event.EventID, Subject{Kind: SubjectUser, ID: "u1"}, "u1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.UserID == nil || *resp.UserID != "u1" {
		t.Fatalf("expected user subject, got %+v", resp)
	}
	if resp.TeamID != nil {
		t.Fatal("solo registration must not carry a team")
	}
	if resp.HostelID == nil || *resp.HostelID != "hostel-brahmaputra" {
		t.Fatalf("expected hostel derived from student profile, got %v", resp.HostelID)
	}
	if resp.Position != string(model.PositionParticipant) || resp.Score != 0 {
		t.Fatalf("expected defaults position=participant score=0, got %+v", resp)
	}
}

func TestRegisterSoloWithoutHostelKeepsNull(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeSolo)
	f.seedStudentUser("u1", "")

	resp, err := f.svc.Register(context.Background(), event.EventID, Subject{Kind: SubjectUser, ID: "u1"}, "u1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.HostelID != nil {
		t.Fatalf("student without hostel must register with null hostel, got %v", *resp.HostelID)
	}
}

func TestRegisterModeMismatch(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeSolo)
	f.mocks.teams.teams["team-1"] = &model.Team{TeamID: "team-1", Name: "Quiz Squad"}
	f.seedStudentUser("u1", "hostel-kapili")

	if _, err := f.svc.Register(context.Background(), event.EventID, Subject{Kind: SubjectTeam, ID: "team-1"}, "u1"); !errors.Is(err, ErrModeMismatch) {
		t.Fatalf("team subject for solo event: expected ErrModeMismatch, got %v", err)
	}

	teamEvent := &model.Event{EventID: "event-2", Name: "Relay", Mode: model.ModeTeam, Category: model.CategorySports}
	f.mocks.events.events[teamEvent.EventID] = teamEvent
	if _, err := f.svc.Register(context.Background(), teamEvent.EventID, Subject{Kind: SubjectUser, ID: "u1"}, "u1"); !errors.Is(err, ErrModeMismatch) {
		t.Fatalf("user subject for team event: expected ErrModeMismatch, got %v", err)
	}
}

func TestRegisterRejectsNonStudent(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeSolo)
	f.mocks.users.users["warden-1"] = &model.User{
		UserID: "warden-1",
		Name:   "Warden",
		Email:  "warden@iitg.ac.in",
		Role:   model.RoleHostelAdmin,
	}

	if _, err := f.svc.Register(context.Background(), event.EventID, Subject{Kind: SubjectUser, ID: "warden-1"}, "warden-1"); !errors.Is(err, ErrSubjectNotStudent) {
		t.Fatalf("expected ErrSubjectNotStudent, got %v", err)
	}
}

func TestRegisterDuplicateUser(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeSolo)
	f.seedStudentUser("u1", "hostel-umiam")
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, event.EventID, Subject{Kind: SubjectUser, ID: "u1"}, "u1"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := f.svc.Register(ctx, event.EventID, Subject{Kind: SubjectUser, ID: "u1"}, "u1"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterDuplicateTeam(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeTeam)
	f.mocks.teams.teams["team-1"] = &model.Team{TeamID: "team-1", Name: "Dramatics"}
	ctx := context.Background()

	teamID := "team-1"
	f.mocks.participations.put(&model.Participation{
		ParticipationID: "participation-race",
		EventID:         event.EventID,
		TeamID:          &teamID,
	})

	if _, err := f.svc.Register(ctx, event.EventID, Subject{Kind: SubjectTeam, ID: "team-1"}, "u1"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	f := newParticipationFixture()
	if _, err := f.svc.Register(context.Background(), "missing", Subject{Kind: SubjectUser, ID: "u1"}, "u1"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestUpdateResultAndCancelBlockedWhenFinalized(t *testing.T) {
	f := newParticipationFixture()
	event := f.seedEvent(model.ModeSolo)
	f.seedStudentUser("u1", "hostel-dihing")
	ctx := context.Background()

	resp, err := f.svc.Register(ctx, event.EventID, Subject{Kind: SubjectUser, ID: "u1"}, "u1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	event.TUSCApproved = true
	event.DSWApproved = true
	event.FinalApproved = true

	pos := string(model.PositionFirst)
	if _, err := f.svc.UpdateResult(ctx, resp.ID, &dto.UpdateResultRequest{Position: &pos}, "admin-1"); !errors.Is(err, ErrEventFinalized) {
		t.Fatalf("update on finalized event: expected ErrEventFinalized, got %v", err)
	}
	if err := f.svc.Cancel(ctx, resp.ID); !errors.Is(err, ErrEventFinalized) {
		t.Fatalf("cancel on finalized event: expected ErrEventFinalized, got %v", err)
	}

	// unfinalized event accepts edits again
	event.FinalApproved = false
	score := 42
	updated, err := f.svc.UpdateResult(ctx, resp.ID, &dto.UpdateResultRequest{Position: &pos, Score: &score}, "admin-1")
	if err != nil {
		t.Fatalf("update after unfinalize: %v", err)
	}
	if updated.Position != string(model.PositionFirst) || updated.Score != 42 {
		t.Fatalf("expected position=1st score=42, got %+v", updated)
	}

	if err := f.svc.Cancel(ctx, resp.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := f.svc.UpdateResult(ctx, resp.ID, &dto.UpdateResultRequest{Score: &score}, "admin-1"); !errors.Is(err, ErrParticipationNotFound) {
		t.Fatalf("expected ErrParticipationNotFound after cancel, got %v", err)
	}
}
