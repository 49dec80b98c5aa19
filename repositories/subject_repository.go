package repositories

import (
	"context"

	"github.com/nguyentuanthien2384/unishare-be-main/models"

	"gorm.io/gorm"
)

type GormSubjectRepository struct {
	db *gorm.DB
}

func NewGormSubjectRepository(db *gorm.DB) *GormSubjectRepository {
	return &GormSubjectRepository{db: db}
}

func (r *GormSubjectRepository) Create(_ context.Context, subject *models.Subject) error {
	return r.db.Create(subject).Error
}

func (r *GormSubjectRepository) GetByID(_ context.Context, subjectID uint) (models.Subject, error) {
	var subject models.Subject
	err := r.db.First(&subject, subjectID).Error
	return subject, err
}

func (r *GormSubjectRepository) List(_ context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.Order("name ASC").Find(&subjects).Error
	return subjects, err
}

func (r *GormSubjectRepository) CountByNameOrCode(_ context.Context, name, code string, excludeID uint) (int64, error) {
	query := r.db.Model(&models.Subject{}).Where("name = ? OR code = ?", name, code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *GormSubjectRepository) UpdateByID(_ context.Context, subjectID uint, updates map[string]interface{}) error {
	result := r.db.Model(&models.Subject{}).Where("id = ?", subjectID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormSubjectRepository) DeleteByID(_ context.Context, subjectID uint) error {
	result := r.db.Delete(&models.Subject{}, subjectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
