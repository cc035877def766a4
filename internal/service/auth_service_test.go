package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/config"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/dto"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, *mockRepos) {
	t.Helper()
	repo, mocks := newMockRepository()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-16-chars",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop()), mocks
}

func signup(t *testing.T, svc AuthService, email, rollNo string) *dto.TokenResponse {
	t.Helper()
	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Asha Sharma",
		Email:    email,
		Password: "correct-horse",
		RollNo:   rollNo,
		Gender:   "female",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	return resp
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	signed := signup(t, svc, "asha@iitg.ac.in", "210101001")
	if signed.AccessToken == "" || signed.RefreshToken == "" {
		t.Fatal("expected a token pair from signup")
	}
	if signed.User.Role != string(model.RoleStudent) {
		t.Fatalf("signup must create a student, got role %q", signed.User.Role)
	}
	if signed.User.Student == nil || signed.User.Student.RollNo != "210101001" {
		t.Fatalf("expected student profile attached, got %+v", signed.User.Student)
	}

	logged, err := svc.Login(ctx, &dto.LoginRequest{Email: "asha@iitg.ac.in", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.User.ID != signed.User.ID {
		t.Fatal("login resolved a different account")
	}
	if logged.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Fatalf("expected expires_in 900, got %d", logged.ExpiresIn)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	signup(t, svc, "asha@iitg.ac.in", "210101001")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@iitg.ac.in", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// unknown email and wrong password are indistinguishable to the caller
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@iitg.ac.in", Password: "whatever-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	signup(t, svc, "asha@iitg.ac.in", "210101001")

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Other",
		Email:    "asha@iitg.ac.in",
		Password: "another-pass",
		RollNo:   "210101002",
		Gender:   "male",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestSignupUnknownHostel(t *testing.T) {
	svc, _ := newAuthFixture(t)
	hostelID := "missing"

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Asha",
		Email:    "asha@iitg.ac.in",
		Password: "correct-horse",
		RollNo:   "210101001",
		Gender:   "female",
		HostelID: &hostelID,
	})
	if !errors.Is(err, ErrHostelNotFound) {
		t.Fatalf("expected ErrHostelNotFound, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()
	signed := signup(t, svc, "asha@iitg.ac.in", "210101001")

	refreshed, err := svc.RefreshToken(ctx, signed.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.User.ID != signed.User.ID {
		t.Fatal("refresh resolved a different account")
	}

	// an access token must not be accepted as a refresh token
	if _, err := svc.RefreshToken(ctx, signed.AccessToken); !errors.Is(err, ErrInvalidTokenType) {
		t.Fatalf("expected ErrInvalidTokenType, got %v", err)
	}
}

func TestLogoutToleratesBadToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout with garbage token must be a no-op, got %v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()
	signed := signup(t, svc, "asha@iitg.ac.in", "210101001")

	user, err := svc.GetCurrentUser(ctx, signed.User.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if user.Email != "asha@iitg.ac.in" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := svc.GetCurrentUser(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
