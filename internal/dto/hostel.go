package dto

// ── hostel module DTOs ──

// CreateHostelRequest creates a hostel.
type CreateHostelRequest struct {
	Name   string `json:"name"   binding:"required,min=2,max=100"`
	Gender string `json:"gender" binding:"required,oneof=boys girls"`
	Warden string `json:"warden" binding:"omitempty,max=100"`
}

// UpdateHostelRequest updates hostel fields.
type UpdateHostelRequest struct {
	Name   *string `json:"name"   binding:"omitempty,min=2,max=100"`
	Warden *string `json:"warden" binding:"omitempty,max=100"`
}

// HostelResponse is the hostel view.
type HostelResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	Warden       string `json:"warden,omitempty"`
	ResidentCount int64 `json:"resident_count"`
}
