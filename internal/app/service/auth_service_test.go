package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"members_roulette/internal/common"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeSessionRepo) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	return NewAuthService(userRepo, sessionRepo, 24*time.Hour), userRepo, sessionRepo
}

func TestSignupRequiresAllFields(t *testing.T) {
	tests := []struct {
		name string
		req  SignupRequest
	}{
		{"sem username", SignupRequest{Email: "a@b.c", Password: "123456"}},
		{"sem email", SignupRequest{Username: "joao", Password: "123456"}},
		{"sem senha", SignupRequest{Username: "joao", Email: "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, _ := newAuthFixture()
			err := svc.Signup(context.Background(), tt.req)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(userRepo.users) != 0 {
				t.Error("nothing should be persisted")
			}
		})
	}
}

func TestSignupRejectsExistingUserOrEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	first := SignupRequest{Username: "joao", Email: "joao@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), first); err != nil {
		t.Fatalf("setup: %v", err)
	}

	sameUsername := SignupRequest{Username: "joao", Email: "outro@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), sameUsername); !errors.Is(err, common.ErrConflict) {
		t.Errorf("same username: expected conflict, got %v", err)
	}

	sameEmail := SignupRequest{Username: "maria", Email: "joao@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), sameEmail); !errors.Is(err, common.ErrConflict) {
		t.Errorf("same email: expected conflict, got %v", err)
	}
}

func TestSignupHashesPassword(t *testing.T) {
	svc, userRepo, _ := newAuthFixture()

	req := SignupRequest{Username: "joao", Email: "joao@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := userRepo.FindByUsername(context.Background(), "joao")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.HashedPassword == "123456" || stored.HashedPassword == "" {
		t.Error("password must be stored hashed")
	}
}

func TestLoginEnumerationResistance(t *testing.T) {
	svc, _, _ := newAuthFixture()

	req := SignupRequest{Username: "joao", Email: "joao@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, errUnknown := svc.Login(context.Background(), LoginRequest{Username: "nao-existe", Password: "123456"})
	_, errWrongPass := svc.Login(context.Background(), LoginRequest{Username: "joao", Password: "errada"})

	if !errors.Is(errUnknown, common.ErrUnauthorized) || !errors.Is(errWrongPass, common.ErrUnauthorized) {
		t.Fatalf("both failures must be unauthorized: %v / %v", errUnknown, errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("messages must be identical: %q vs %q", errUnknown.Error(), errWrongPass.Error())
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.Login(context.Background(), LoginRequest{Username: "joao"}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("missing password: expected validation error, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginRequest{Password: "123456"}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("missing username: expected validation error, got %v", err)
	}
}

func TestLoginCreatesSession(t *testing.T) {
	svc, userRepo, sessionRepo := newAuthFixture()

	req := SignupRequest{Username: "joao", Email: "joao@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("setup: %v", err)
	}

	session, err := svc.Login(context.Background(), LoginRequest{Username: "joao", Password: "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token == "" {
		t.Fatal("session token must be set")
	}

	stored, err := sessionRepo.FindSession(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("session not in store: %v", err)
	}
	user, _ := userRepo.FindByUsername(context.Background(), "joao")
	if stored.UserID != user.ID || stored.Username != "joao" {
		t.Errorf("session contents wrong: %+v", stored)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	svc, _, sessionRepo := newAuthFixture()

	req := SignupRequest{Username: "joao", Email: "joao@example.com", Password: "123456"}
	if err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("setup: %v", err)
	}
	session, err := svc.Login(context.Background(), LoginRequest{Username: "joao", Password: "123456"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sessionRepo.FindSession(context.Background(), session.Token); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("session should be gone, got %v", err)
	}
}

func TestLogoutStoreFailure(t *testing.T) {
	svc, _, sessionRepo := newAuthFixture()
	sessionRepo.failAll = true

	err := svc.Logout(context.Background(), "qualquer")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := common.HTTPStatusFromError(err); got != 500 {
		t.Errorf("status = %d, want 500", got)
	}
}
