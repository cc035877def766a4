package dto

// ── team module DTOs ──

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// AddMemberRequest adds a student to a team under a category.
type AddMemberRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Category  string `json:"category"   binding:"required,oneof=sports cultural"`
}

// TeamResponse is the team view.
type TeamResponse struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Members []TeamMemberResponse `json:"members,omitempty"`
}

// TeamMemberResponse is a membership row view.
type TeamMemberResponse struct {
	StudentID  string `json:"student_id"`
	Name       string `json:"name"`
	RollNo     string `json:"roll_no"`
	Category   string `json:"category"`
	HostelName string `json:"hostel_name,omitempty"`
}
