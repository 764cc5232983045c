package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/models/dtos/requests"
)

const testSecret = "test-signing-secret"

func TestAuthService_SignupLoginRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(gdb), testSecret)

	ctx := context.Background()
	signup, err := svc.Signup(ctx, requests.SignupRequest{
		Name:     "Nia",
		Email:    "Nia@Example.com",
		Password: "hunter22",
		UserRole: "MENTOR",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if signup.Token == "" {
		t.Error("Signup should issue a token")
	}
	if signup.User.Email != "nia@example.com" {
		t.Errorf("Email should be lowercased, got %q", signup.User.Email)
	}
	if signup.User.UserRole != "MENTOR" {
		t.Errorf("Role = %q, want MENTOR", signup.User.UserRole)
	}

	login, err := svc.Login(ctx, requests.LoginRequest{Email: "nia@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(login.Token, &auth.SessionClaims{}, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("Token should verify: %v", err)
	}
	claims := parsed.Claims.(*auth.SessionClaims)
	if claims.UserID != signup.User.ID || claims.Email != "nia@example.com" || claims.UserRole != "MENTOR" {
		t.Errorf("Claims = %+v", claims)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("GetExpirationTime: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("Token expiry %v away, want about 7 days", ttl)
	}
}

func TestAuthService_WrongPassword(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(gdb), testSecret)

	ctx := context.Background()
	if _, err := svc.Signup(ctx, requests.SignupRequest{Name: "A", Email: "a@example.com", Password: "correct"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, err := svc.Login(ctx, requests.LoginRequest{Email: "a@example.com", Password: "wrong"})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 401 {
		t.Fatalf("Wrong password should 401, got %v", err)
	}
	if wfErr.Message != constants.MsgInvalidCredentials {
		t.Errorf("Message = %q", wfErr.Message)
	}

	// unknown account gets the same generic message
	_, err = svc.Login(ctx, requests.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	if !errors.As(err, &wfErr) || wfErr.Message != constants.MsgInvalidCredentials {
		t.Fatalf("Unknown email should get generic 401, got %v", err)
	}
}

func TestAuthService_DuplicateEmailConflicts(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(gdb), testSecret)

	ctx := context.Background()
	if _, err := svc.Signup(ctx, requests.SignupRequest{Name: "First", Email: "dup@example.com", Password: "pw1"}); err != nil {
		t.Fatalf("First signup: %v", err)
	}

	_, err := svc.Signup(ctx, requests.SignupRequest{Name: "Second", Email: "dup@example.com", Password: "pw2"})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 409 {
		t.Fatalf("Duplicate email should conflict, got %v", err)
	}

	// case-variant of a stored email is the same account
	_, err = svc.Signup(ctx, requests.SignupRequest{Name: "Third", Email: "  DUP@Example.COM ", Password: "pw3"})
	if !errors.As(err, &wfErr) || wfErr.Status != 409 {
		t.Fatalf("Case-variant duplicate email should conflict, got %v", err)
	}
}

func TestAuthService_AdminRoleNotSelfRegistrable(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(gdb), testSecret)

	_, err := svc.Signup(context.Background(), requests.SignupRequest{
		Name: "Sneaky", Email: "sneaky@example.com", Password: "pw", UserRole: "ADMIN",
	})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 400 {
		t.Fatalf("ADMIN signup should be rejected, got %v", err)
	}
}

func TestAuthService_UnknownRoleDefaultsToInnovator(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(gdb), testSecret)

	resp, err := svc.Signup(context.Background(), requests.SignupRequest{
		Name: "Def", Email: "def@example.com", Password: "pw", UserRole: "WIZARD",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if resp.User.UserRole != string(constants.RoleInnovator) {
		t.Errorf("Role = %q, want INNOVATOR", resp.User.UserRole)
	}
}
