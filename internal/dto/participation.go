package dto

// ── participation module DTOs ──

// RegisterParticipationRequest registers a subject for an event.
// Exactly one of user_id/team_id must be set; the handler rejects the
// both/neither shapes before the registrar sees a subject.
type RegisterParticipationRequest struct {
	EventID string  `json:"event_id" binding:"required,uuid"`
	UserID  *string `json:"user_id"  binding:"omitempty,uuid"`
	TeamID  *string `json:"team_id"  binding:"omitempty,uuid"`
}

// UpdateResultRequest sets a participation's position and/or score.
type UpdateResultRequest struct {
	Position *string `json:"position" binding:"omitempty,oneof=1st 2nd 3rd participant"`
	Score    *int    `json:"score"    binding:"omitempty,min=0"`
}

// ParticipationResponse is the participation view.
type ParticipationResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"event_id"`
	UserID     *string `json:"user_id,omitempty"`
	TeamID     *string `json:"team_id,omitempty"`
	HostelID   *string `json:"hostel_id,omitempty"`
	Position   string  `json:"position"`
	Score      int     `json:"score"`
}
