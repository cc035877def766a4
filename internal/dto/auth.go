package dto

// ── auth module DTOs ──

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// SignupRequest creates a student account with its profile.
type SignupRequest struct {
	Name     string  `json:"name"      binding:"required,min=2,max=100"`
	Email    string  `json:"email"     binding:"required,email"`
	Password string  `json:"password"  binding:"required,min=8,max=72"`
	RollNo   string  `json:"roll_no"   binding:"required,min=2,max=20"`
	Gender   string  `json:"gender"    binding:"required,oneof=male female"`
	HostelID *string `json:"hostel_id" binding:"omitempty,uuid"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is the login/refresh reply.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    string          `json:"role"`
	Student *StudentSummary `json:"student,omitempty"`
}

// StudentSummary is the embedded student profile view.
type StudentSummary struct {
	StudentID  string  `json:"student_id"`
	RollNo     string  `json:"roll_no"`
	Gender     string  `json:"gender"`
	HostelID   *string `json:"hostel_id,omitempty"`
	HostelName string  `json:"hostel_name,omitempty"`
}
