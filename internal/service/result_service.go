package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
)

// ResultService is the read-side ranking projection. It performs no writes
// and exposes only events that have cleared both approvals and been
// finalized.
type ResultService interface {
	// EventResults returns the ordered result set for one event, or an empty
	// entry list when the event is not finalized.
	EventResults(ctx context.Context, eventID string) (*dto.EventResultsResponse, error)
	// AllResults returns results for every finalized event, ordered by date.
	AllResults(ctx context.Context) ([]dto.EventResultsResponse, error)
}

type resultService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewResultService creates the ResultService.
func NewResultService(repo *repository.Repository, logger *zap.Logger) ResultService {
	return &resultService{repo: repo, logger: logger}
}

func (s *resultService) EventResults(ctx context.Context, eventID string) (*dto.EventResultsResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	resp := &dto.EventResultsResponse{
		EventID:   event.EventID,
		EventName: event.Name,
		Date:      event.Date.Format(time.RFC3339),
		Mode:      string(event.Mode),
		Category:  string(event.Category),
		Entries:   []dto.ResultEntry{},
	}

	if !event.FinalApproved {
		return resp, nil
	}

	entries, err := s.rank(ctx, event)
	if err != nil {
		return nil, err
	}
	resp.Entries = entries
	return resp, nil
}

func (s *resultService) AllResults(ctx context.Context) ([]dto.EventResultsResponse, error) {
	events, err := s.repo.Event.ListFinalized(ctx)
	if err != nil {
		s.logger.Error("list finalized events failed", zap.Error(err))
		return nil, err
	}

	results := make([]dto.EventResultsResponse, 0, len(events))
	for i := range events {
		entries, err := s.rank(ctx, &events[i])
		if err != nil {
			return nil, err
		}
		results = append(results, dto.EventResultsResponse{
			EventID:   events[i].EventID,
			EventName: events[i].Name,
			Date:      events[i].Date.Format(time.RFC3339),
			Mode:      string(events[i].Mode),
			Category:  string(events[i].Category),
			Entries:   entries,
		})
	}
	return results, nil
}

// rank orders an event's participations by position rank ascending, then
// score descending within the same position. The sort is stable so equal
// rows keep their query order.
func (s *resultService) rank(ctx context.Context, event *model.Event) ([]dto.ResultEntry, error) {
	participations, err := s.repo.Participation.ListByEvent(ctx, event.EventID)
	if err != nil {
		s.logger.Error("list participations failed",
			zap.String("event_id", event.EventID), zap.Error(err))
		return nil, err
	}

	sort.SliceStable(participations, func(i, j int) bool {
		ri, rj := participations[i].Position.Rank(), participations[j].Position.Rank()
		if ri != rj {
			return ri < rj
		}
		return participations[i].Score > participations[j].Score
	})

	entries := make([]dto.ResultEntry, 0, len(participations))
	for _, p := range participations {
		entry := dto.ResultEntry{
			ParticipantName: displayName(event.Mode, &p),
			Position:        string(p.Position),
			Score:           p.Score,
		}
		if p.Hostel != nil {
			entry.HostelName = p.Hostel.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// displayName resolves to the user's name for solo events and the team's
// name for team events, never both.
func displayName(mode model.EventMode, p *model.Participation) string {
	switch mode {
	case model.ModeSolo:
		if p.User != nil {
			return p.User.Name
		}
	case model.ModeTeam:
		if p.Team != nil {
			return p.Team.Name
		}
	}
	return ""
}
