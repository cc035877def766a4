package dto

// ── event score module DTOs ──

// CreateEventScoreRequest records a hostel-level score for an event.
type CreateEventScoreRequest struct {
	EventID  string  `json:"event_id"  binding:"required,uuid"`
	HostelID string  `json:"hostel_id" binding:"required,uuid"`
	UserID   *string `json:"user_id"   binding:"omitempty,uuid"`
	TeamID   *string `json:"team_id"   binding:"omitempty,uuid"`
	Score    int     `json:"score"     binding:"min=0"`
	Remarks  string  `json:"remarks"   binding:"omitempty,max=500"`
}

// UpdateEventScoreRequest edits a score record.
type UpdateEventScoreRequest struct {
	Score   *int    `json:"score"   binding:"omitempty,min=0"`
	Remarks *string `json:"remarks" binding:"omitempty,max=500"`
}

// EventScoreListRequest filters score records.
type EventScoreListRequest struct {
	EventID  string `form:"event_id"  binding:"omitempty,uuid"`
	HostelID string `form:"hostel_id" binding:"omitempty,uuid"`
}

// EventScoreResponse is the score record view.
type EventScoreResponse struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	HostelID      string  `json:"hostel_id"`
	HostelName    string  `json:"hostel_name,omitempty"`
	UserID        *string `json:"user_id,omitempty"`
	TeamID        *string `json:"team_id,omitempty"`
	Score         int     `json:"score"`
	Remarks       string  `json:"remarks,omitempty"`
	TUSCApproved  bool    `json:"tusc_approved"`
	DSWApproved   bool    `json:"dsw_approved"`
	FinalApproved bool    `json:"final_approved"`
}
