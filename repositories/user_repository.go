package repositories

import (
	"context"
	"strings"

	"github.com/nguyentuanthien2384/unishare-be-main/models"

	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(_ context.Context, user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	return user, err
}

func (r *GormUserRepository) GetByID(_ context.Context, userID uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, userID).Error
	return user, err
}

func (r *GormUserRepository) usersQuery(in ListUsersInput) *gorm.DB {
	query := r.db.Model(&models.User{})
	if in.Search != "" {
		pattern := "%" + strings.ToLower(in.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if in.Role != "" {
		query = query.Where("role = ?", in.Role)
	}
	return query
}

func (r *GormUserRepository) Count(_ context.Context, in ListUsersInput) (int64, error) {
	var total int64
	err := r.usersQuery(in).Count(&total).Error
	return total, err
}

func (r *GormUserRepository) List(_ context.Context, in ListUsersInput) ([]models.User, error) {
	sortColumns := map[string]string{
		"joined_date": "created_at",
		"full_name":   "full_name",
		"email":       "email",
	}
	sortCol := sortColumns[in.SortBy]
	if sortCol == "" {
		sortCol = "created_at"
	}

	order := strings.ToUpper(in.Order)
	if order != "ASC" {
		order = "DESC"
	}

	var users []models.User
	err := r.usersQuery(in).
		Omit("password").
		Order(sortCol + " " + order).
		Offset(in.Offset).Limit(in.Limit).
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) UpdateByID(_ context.Context, userID uint, updates map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormUserRepository) DeleteByID(_ context.Context, userID uint) error {
	result := r.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormUserRepository) AddUploadsCount(_ context.Context, userID uint, delta int64) error {
	if delta == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("uploads_count", gorm.Expr("uploads_count + ?", delta)).Error
}

func (r *GormUserRepository) AddDownloadsCount(_ context.Context, userID uint, delta int64) error {
	if delta == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("downloads_count", gorm.Expr("downloads_count + ?", delta)).Error
}
