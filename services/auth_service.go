package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUser struct {
	ID             uint              `json:"id"`
	Email          string            `json:"email"`
	FullName       string            `json:"full_name"`
	AvatarURL      string            `json:"avatar_url"`
	Role           models.UserRole   `json:"role"`
	Status         models.UserStatus `json:"status"`
	UploadsCount   int64             `json:"uploads_count"`
	DownloadsCount int64             `json:"downloads_count"`
	JoinedDate     time.Time         `json:"joined_date"`
}

type LoginOutput struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (AuthUser, error)
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
}

type authService struct {
	users repositories.UserRepository
	stats repositories.StatsRepository
}

func NewAuthService(users repositories.UserRepository, stats repositories.StatsRepository) AuthService {
	return &authService{users: users, stats: stats}
}

func toAuthUser(user models.User) AuthUser {
	return AuthUser{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		AvatarURL:      user.AvatarURL,
		Role:           user.Role,
		Status:         user.Status,
		UploadsCount:   user.UploadsCount,
		DownloadsCount: user.DownloadsCount,
		JoinedDate:     user.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (AuthUser, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return AuthUser{}, newAppError(http.StatusConflict, "email already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "failed to check email", err)
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "failed to hash password", err)
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: in.FullName,
		Role:     models.RoleUser,
		Status:   models.UserActive,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "failed to create user", err)
	}

	if err := s.stats.IncrActiveUsers(ctx, 1); err != nil {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}

	return toAuthUser(user), nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginOutput{}, newAppError(http.StatusUnauthorized, "invalid credentials", nil)
		}
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	if user.Status == models.UserBlocked {
		return LoginOutput{}, newAppError(http.StatusUnauthorized, "account is blocked, contact an administrator", nil)
	}

	if !utils.CheckPassword(in.Password, user.Password) {
		return LoginOutput{}, newAppError(http.StatusUnauthorized, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to generate token", err)
	}

	return LoginOutput{AccessToken: token, User: toAuthUser(user)}, nil
}
