package repositories

import (
	"context"

	"github.com/nguyentuanthien2384/unishare-be-main/models"

	"gorm.io/gorm"
)

type GormLogRepository struct {
	db *gorm.DB
}

func NewGormLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

func (r *GormLogRepository) Create(_ context.Context, entry *models.Log) error {
	return r.db.Create(entry).Error
}
