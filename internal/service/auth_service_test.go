package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/dreampix/dreampix-backend/internal/repository"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file:"+t.TempDir()+"/app.db"), &gorm.Config{})
	if err != nil {
		t.Fatalf("sqlite open failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(db), nil, zap.NewNop())
}

func TestRegisterCreatesUserWithZeroCredits(t *testing.T) {
	svc := newAuthFixture(t)

	auth, err := svc.Register(models.RegisterRequest{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if auth.Token == "" {
		t.Fatalf("expected a token")
	}
	if auth.User.CreditBalance != 0 {
		t.Fatalf("new users start with zero credits, got %d", auth.User.CreditBalance)
	}
	if auth.User.Password == "secret123" {
		t.Fatalf("password must be hashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)

	req := models.RegisterRequest{FullName: "A", Email: "dup@example.com", Password: "secret123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(req); err == nil {
		t.Fatalf("duplicate email must be rejected")
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Register(models.RegisterRequest{
		FullName: "Login User",
		Email:    "login@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	auth, err := svc.Login(models.LoginRequest{Email: "login@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.Token == "" {
		t.Fatalf("expected a token")
	}

	if _, err := svc.Login(models.LoginRequest{Email: "login@example.com", Password: "wrong"}); err == nil {
		t.Fatalf("wrong password must be rejected")
	}
	if _, err := svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"}); err == nil {
		t.Fatalf("unknown email must be rejected")
	}
}
