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

func newEventServiceForTest() (EventService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewEventService(repo, zap.NewNop()), mocks
}

func seedEvent(t *testing.T, svc EventService, mode, category string) string {
	t.Helper()
	resp, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name:     "Annual Chess Open",
		Date:     time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC),
		Venue:    "Main Auditorium",
		Mode:     mode,
		Category: category,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return resp.ID
}

func TestEventApproveIdempotent(t *testing.T) {
	svc, _ := newEventServiceForTest()
	ctx := context.Background()
	id := seedEvent(t, svc, "solo", "sports")

	resp, err := svc.Approve(ctx, id, model.RoleTUSC, "tusc-1")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !resp.TUSCApproved || resp.DSWApproved {
		t.Fatalf("expected only TUSC approved, got %+v", resp)
	}

	// second approve by the same authority changes nothing
	resp, err = svc.Approve(ctx, id, model.RoleTUSC, "tusc-1")
	if err != nil {
		t.Fatalf("Approve again: %v", err)
	}
	if !resp.TUSCApproved || resp.DSWApproved || resp.FinalApproved {
		t.Fatalf("repeat approve changed state: %+v", resp)
	}
}

func TestEventApproveRejectsNonApprover(t *testing.T) {
	svc, _ := newEventServiceForTest()
	id := seedEvent(t, svc, "solo", "sports")

	for _, role := range []model.Role{model.RoleStudent, model.RoleHostelAdmin, model.RoleAdmin} {
		if _, err := svc.Approve(context.Background(), id, role, "u-1"); !errors.Is(err, ErrNotApprover) {
			t.Errorf("role %s: expected ErrNotApprover, got %v", role, err)
		}
	}
}

func TestEventFinalizeRequiresBothApprovals(t *testing.T) {
	svc, _ := newEventServiceForTest()
	ctx := context.Background()
	id := seedEvent(t, svc, "solo", "sports")

	if _, err := svc.Finalize(ctx, id, "admin-1"); !errors.Is(err, ErrApprovalIncomplete) {
		t.Fatalf("finalize with no approvals: expected ErrApprovalIncomplete, got %v", err)
	}

	if _, err := svc.Approve(ctx, id, model.RoleTUSC, "tusc-1"); err != nil {
		t.Fatalf("Approve tusc: %v", err)
	}
	if _, err := svc.Finalize(ctx, id, "admin-1"); !errors.Is(err, ErrApprovalIncomplete) {
		t.Fatalf("finalize with one approval: expected ErrApprovalIncomplete, got %v", err)
	}

	if _, err := svc.Approve(ctx, id, model.RoleDSW, "dsw-1"); err != nil {
		t.Fatalf("Approve dsw: %v", err)
	}
	resp, err := svc.Finalize(ctx, id, "admin-1")
	if err != nil {
		t.Fatalf("finalize with both approvals: %v", err)
	}
	if !resp.FinalApproved {
		t.Fatal("expected final_approved after finalize")
	}
}

func TestEventRetractClearsFinalApproval(t *testing.T) {
	svc, _ := newEventServiceForTest()
	ctx := context.Background()
	id := seedEvent(t, svc, "team", "cultural")

	svc.Approve(ctx, id, model.RoleTUSC, "tusc-1")
	svc.Approve(ctx, id, model.RoleDSW, "dsw-1")
	if _, err := svc.Finalize(ctx, id, "admin-1"); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	resp, err := svc.Retract(ctx, id, model.RoleDSW, "dsw-1")
	if err != nil {
		t.Fatalf("Retract: %v", err)
	}
	if resp.DSWApproved {
		t.Fatal("expected DSW approval cleared")
	}
	if !resp.TUSCApproved {
		t.Fatal("retract must not touch the other authority's flag")
	}
	if resp.FinalApproved {
		t.Fatal("retract must always drop final approval")
	}

	// re-finalizing now fails until DSW approves again
	if _, err := svc.Finalize(ctx, id, "admin-1"); !errors.Is(err, ErrApprovalIncomplete) {
		t.Fatalf("expected ErrApprovalIncomplete after retract, got %v", err)
	}
}

func TestEventUpdateRejectedWhenFinalized(t *testing.T) {
	svc, _ := newEventServiceForTest()
	ctx := context.Background()
	id := seedEvent(t, svc, "solo", "sports")

	svc.Approve(ctx, id, model.RoleTUSC, "tusc-1")
	svc.Approve(ctx, id, model.RoleDSW, "dsw-1")
	svc.Finalize(ctx, id, "admin-1")

	name := "Renamed"
	if _, err := svc.Update(ctx, id, &dto.UpdateEventRequest{Name: &name}, "admin-1"); !errors.Is(err, ErrEventFinalized) {
		t.Fatalf("expected ErrEventFinalized, got %v", err)
	}

	// explicit unfinalize reopens edits
	if _, err := svc.Unfinalize(ctx, id, "admin-1"); err != nil {
		t.Fatalf("Unfinalize: %v", err)
	}
	resp, err := svc.Update(ctx, id, &dto.UpdateEventRequest{Name: &name}, "admin-1")
	if err != nil {
		t.Fatalf("update after unfinalize: %v", err)
	}
	if resp.Name != "Renamed" {
		t.Fatalf("expected renamed event, got %q", resp.Name)
	}
	if !resp.TUSCApproved || !resp.DSWApproved {
		t.Fatal("unfinalize must not touch the authority flags")
	}
}

func TestEventDeleteRefusedWhileReferenced(t *testing.T) {
	svc, mocks := newEventServiceForTest()
	ctx := context.Background()
	id := seedEvent(t, svc, "solo", "sports")

	mocks.events.references[id] = 2
	if err := svc.Delete(ctx, id); !errors.Is(err, ErrEventReferenced) {
		t.Fatalf("expected ErrEventReferenced, got %v", err)
	}

	mocks.events.references[id] = 0
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete unreferenced event: %v", err)
	}
	if _, err := svc.GetByID(ctx, id); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound after delete, got %v", err)
	}
}

func TestEventGetByIDNotFound(t *testing.T) {
	svc, _ := newEventServiceForTest()
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
