package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"

	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	FullName  *string
	AvatarURL *string
}

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

type UserStatsOutput struct {
	TotalUploads       int64   `json:"total_uploads"`
	TotalDownloads     int64   `json:"total_downloads"`
	AvgDownloadsPerDoc float64 `json:"avg_downloads_per_doc"`
}

type UploadStatsOutput struct {
	Period         string                    `json:"period"`
	TotalDocuments int64                     `json:"total_documents"`
	TotalDownloads int64                     `json:"total_downloads"`
	Data           []repositories.DailyCount `json:"data"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID uint) (AuthUser, error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (AuthUser, error)
	ChangePassword(ctx context.Context, userID uint, in ChangePasswordInput) error
	DeleteOwnAccount(ctx context.Context, userID uint, password string) error
	GetStats(ctx context.Context, userID uint) (UserStatsOutput, error)
	GetUploadStats(ctx context.Context, userID uint, period, fromDate, toDate string) (UploadStatsOutput, error)
}

type userService struct {
	users     repositories.UserRepository
	documents repositories.DocumentRepository
	stats     repositories.StatsRepository
}

func NewUserService(users repositories.UserRepository, documents repositories.DocumentRepository, stats repositories.StatsRepository) UserService {
	return &userService{users: users, documents: documents, stats: stats}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (AuthUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthUser{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return AuthUser{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}
	return toAuthUser(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (AuthUser, error) {
	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.AvatarURL != nil {
		updates["avatar_url"] = *in.AvatarURL
	}

	if len(updates) > 0 {
		if err := s.users.UpdateByID(ctx, userID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return AuthUser{}, newAppError(http.StatusNotFound, "user not found", nil)
			}
			return AuthUser{}, newAppError(http.StatusInternalServerError, "failed to update profile", err)
		}
	}

	return s.GetProfile(ctx, userID)
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, in ChangePasswordInput) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "user not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	if !utils.CheckPassword(in.OldPassword, user.Password) {
		return newAppError(http.StatusUnauthorized, "old password is incorrect", nil)
	}

	hashed, err := utils.HashPassword(in.NewPassword)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to hash password", err)
	}

	if err := s.users.UpdateByID(ctx, userID, map[string]interface{}{"password": hashed}); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update password", err)
	}
	return nil
}

func (s *userService) DeleteOwnAccount(ctx context.Context, userID uint, password string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "user not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	if user.Role == models.RoleAdmin {
		return newAppError(http.StatusForbidden, "admin must delegate the role before deleting the account", nil)
	}

	if !utils.CheckPassword(password, user.Password) {
		return newAppError(http.StatusUnauthorized, "password is incorrect", nil)
	}

	if err := s.users.DeleteByID(ctx, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete account", err)
	}

	if err := s.stats.IncrActiveUsers(ctx, -1); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update platform stats", err)
	}
	return nil
}

func (s *userService) GetStats(ctx context.Context, userID uint) (UserStatsOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserStatsOutput{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return UserStatsOutput{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	avg := 0.0
	if user.UploadsCount > 0 {
		avg = float64(user.DownloadsCount) / float64(user.UploadsCount)
	}

	return UserStatsOutput{
		TotalUploads:       user.UploadsCount,
		TotalDownloads:     user.DownloadsCount,
		AvgDownloadsPerDoc: utils.Round2(avg),
	}, nil
}

// GetUploadStats buckets the user's own uploads per calendar day within
// the requested period. Supported periods: day, month, year, all, custom.
func (s *userService) GetUploadStats(ctx context.Context, userID uint, period, fromDate, toDate string) (UploadStatsOutput, error) {
	if period == "" {
		period = "all"
	}

	now := time.Now()
	var since time.Time
	var until *time.Time

	switch period {
	case "custom":
		if fromDate == "" {
			return UploadStatsOutput{}, newAppError(http.StatusBadRequest, "fromDate is required for a custom period", nil)
		}
		parsed, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return UploadStatsOutput{}, newAppError(http.StatusBadRequest, "invalid fromDate", nil)
		}
		since = parsed
		if toDate != "" {
			end, err := time.Parse("2006-01-02", toDate)
			if err != nil {
				return UploadStatsOutput{}, newAppError(http.StatusBadRequest, "invalid toDate", nil)
			}
			end = end.Add(24*time.Hour - time.Nanosecond)
			until = &end
		}
	case "day":
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "month":
		since = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		since = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	case "all":
		since = time.Time{}
	default:
		return UploadStatsOutput{}, newAppError(http.StatusBadRequest, "unknown period", nil)
	}

	buckets, err := s.documents.CountUploadsByDay(ctx, since, until, userID)
	if err != nil {
		return UploadStatsOutput{}, newAppError(http.StatusInternalServerError, "failed to aggregate uploads", err)
	}

	out := UploadStatsOutput{Period: period, Data: buckets}
	for _, b := range buckets {
		out.TotalDocuments += b.Count
		out.TotalDownloads += b.Downloads
	}
	if out.Data == nil {
		out.Data = []repositories.DailyCount{}
	}
	return out, nil
}
