package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/auramap/auramap-backend/internal/config"
	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/testutil"
)

func newAuthFixture() (*AuthUseCase, *testutil.UserRepo) {
	users := testutil.NewUserRepo()
	uc := NewAuthUseCase(users, &config.JWTConfig{
		Secret:    "test-secret-test-secret-test-secret!",
		ExpiryMin: 60,
	})
	return uc, users
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newAuthFixture()

	reg, err := uc.Register(context.Background(), &RegisterRequest{
		Username: "asli",
		Email:    "Asli@Example.com",
		Password: "sifre123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.Token == "" {
		t.Error("Register() returned empty token")
	}
	if reg.User.Email != "asli@example.com" {
		t.Errorf("email = %s, want lowercased", reg.User.Email)
	}
	if reg.User.PasswordHash == "sifre123" {
		t.Error("password stored in plain text")
	}

	login, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "asli@example.com",
		Password: "sifre123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user id = %s, want %s", login.User.ID, reg.User.ID)
	}
}

func TestLoginRejections(t *testing.T) {
	uc, _ := newAuthFixture()
	if _, err := uc.Register(context.Background(), &RegisterRequest{
		Username: "asli", Email: "asli@example.com", Password: "sifre123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "asli@example.com", "yanlis"},
		{"unknown email", "ghost@example.com", "sifre123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), &LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, domain.ErrInvalidCredential) {
				t.Errorf("Login() error = %v, want ErrInvalidCredential", err)
			}
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	uc, _ := newAuthFixture()
	if _, err := uc.Register(context.Background(), &RegisterRequest{
		Username: "asli", Email: "asli@example.com", Password: "sifre123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := uc.Register(context.Background(), &RegisterRequest{
		Username: "other", Email: "asli@example.com", Password: "sifre123",
	}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("duplicate email error = %v, want ErrEmailTaken", err)
	}
	if _, err := uc.Register(context.Background(), &RegisterRequest{
		Username: "asli", Email: "other@example.com", Password: "sifre123",
	}); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("duplicate username error = %v, want ErrUsernameTaken", err)
	}
}

func TestVerifyToken(t *testing.T) {
	uc, _ := newAuthFixture()
	reg, err := uc.Register(context.Background(), &RegisterRequest{
		Username: "asli", Email: "asli@example.com", Password: "sifre123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	userID, username, err := uc.VerifyToken(reg.Token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != reg.User.ID || username != "asli" {
		t.Errorf("VerifyToken() = %s/%s, want %s/asli", userID, username, reg.User.ID)
	}

	if _, _, err := uc.VerifyToken("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("garbage token error = %v, want ErrInvalidToken", err)
	}

	// A token signed with a different secret is rejected.
	other := NewAuthUseCase(testutil.NewUserRepo(), &config.JWTConfig{
		Secret:    "another-secret-another-secret-12345!",
		ExpiryMin: 60,
	})
	if _, _, err := other.VerifyToken(reg.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("cross-secret token error = %v, want ErrInvalidToken", err)
	}
}
