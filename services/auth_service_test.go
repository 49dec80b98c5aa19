package services

import (
	"context"
	"testing"

	"github.com/nguyentuanthien2384/unishare-be-main/config"
	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		Storage: config.StorageConfig{
			BasePath:          "./storage",
			MaxFileSize:       10 * 1024 * 1024,
			AllowedExtensions: []string{".pdf", ".docx", ".png"},
		},
		JWT:        config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
		Pagination: config.PaginationConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
}

func TestAuthServiceRegisterNormalizesEmail(t *testing.T) {
	config.AppConfig = testConfig()

	users := newFakeUserRepo()
	stats := &fakeStatsRepo{}
	svc := NewAuthService(users, stats)

	out, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if out.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", out.Email)
	}
	if out.Role != models.RoleUser || out.Status != models.UserActive {
		t.Fatalf("expected USER/ACTIVE defaults, got %s/%s", out.Role, out.Status)
	}
	if stats.stats.ActiveUsers != 1 {
		t.Fatalf("expected active users counter 1, got %d", stats.stats.ActiveUsers)
	}

	stored, err := users.GetByID(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.Password == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestAuthServiceRegisterConflict(t *testing.T) {
	config.AppConfig = testConfig()

	users := newFakeUserRepo()
	users.put(models.User{Email: "taken@example.com"})
	svc := NewAuthService(users, &fakeStatsRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Taken@example.com",
		Password: "secret123",
	})
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 409 {
		t.Fatalf("expected HTTP 409, got %d", appErr.HTTPCode)
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	config.AppConfig = testConfig()

	hash, err := utils.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	users := newFakeUserRepo()
	users.put(models.User{
		Email:    "bob@example.com",
		Password: hash,
		Status:   models.UserActive,
	})
	svc := NewAuthService(users, &fakeStatsRepo{})

	_, err = svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "wrong"})
	if err == nil {
		t.Fatalf("expected unauthorized error")
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 401 {
		t.Fatalf("expected HTTP 401, got %d", appErr.HTTPCode)
	}
}

func TestAuthServiceLoginBlockedAccount(t *testing.T) {
	config.AppConfig = testConfig()

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	users := newFakeUserRepo()
	users.put(models.User{
		Email:    "blocked@example.com",
		Password: hash,
		Status:   models.UserBlocked,
	})
	svc := NewAuthService(users, &fakeStatsRepo{})

	_, err = svc.Login(context.Background(), LoginInput{Email: "blocked@example.com", Password: "secret123"})
	if err == nil {
		t.Fatalf("expected blocked-account error")
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 401 {
		t.Fatalf("expected HTTP 401, got %d", appErr.HTTPCode)
	}
	if appErr.Message != "account is blocked, contact an administrator" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	config.AppConfig = testConfig()

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	users := newFakeUserRepo()
	user := users.put(models.User{
		Email:    "carol@example.com",
		Password: hash,
		FullName: "Carol",
		Role:     models.RoleUser,
		Status:   models.UserActive,
	})
	svc := NewAuthService(users, &fakeStatsRepo{})

	out, err := svc.Login(context.Background(), LoginInput{Email: "Carol@Example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatalf("expected a token")
	}
	if out.User.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, out.User.ID)
	}

	claims, err := utils.ParseToken(out.AccessToken)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != models.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
