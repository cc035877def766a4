package dto

import "time"

// ── event module DTOs ──

// CreateEventRequest creates an event.
type CreateEventRequest struct {
	Name        string    `json:"name"        binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Date        time.Time `json:"date"        binding:"required"`
	Venue       string    `json:"venue"       binding:"omitempty,max=200"`
	Mode        string    `json:"mode"        binding:"required,oneof=solo team"`
	Category    string    `json:"category"    binding:"required,oneof=sports cultural"`
}

// UpdateEventRequest updates event content fields.
type UpdateEventRequest struct {
	Name        *string    `json:"name"        binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Date        *time.Time `json:"date"`
	Venue       *string    `json:"venue"       binding:"omitempty,max=200"`
}

// EventListRequest filters the event list.
type EventListRequest struct {
	PaginationRequest
	Category      string `form:"category" binding:"omitempty,oneof=sports cultural"`
	Mode          string `form:"mode"     binding:"omitempty,oneof=solo team"`
	FinalizedOnly bool   `form:"finalized_only"`
}

// EventResponse is the event view.
type EventResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Date          string `json:"date"`
	Venue         string `json:"venue,omitempty"`
	Mode          string `json:"mode"`
	Category      string `json:"category"`
	TUSCApproved  bool   `json:"tusc_approved"`
	DSWApproved   bool   `json:"dsw_approved"`
	FinalApproved bool   `json:"final_approved"`
}
