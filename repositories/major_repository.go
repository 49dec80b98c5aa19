package repositories

import (
	"context"

	"github.com/nguyentuanthien2384/unishare-be-main/models"

	"gorm.io/gorm"
)

type GormMajorRepository struct {
	db *gorm.DB
}

func NewGormMajorRepository(db *gorm.DB) *GormMajorRepository {
	return &GormMajorRepository{db: db}
}

func expandSubjectRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Subjects", func(db *gorm.DB) *gorm.DB {
		return db.Select("subjects.id", "subjects.name", "subjects.code")
	})
}

func (r *GormMajorRepository) Create(_ context.Context, major *models.Major) error {
	return r.db.Create(major).Error
}

func (r *GormMajorRepository) GetByID(_ context.Context, majorID uint, expandSubjects bool) (models.Major, error) {
	db := r.db
	if expandSubjects {
		db = expandSubjectRefs(db)
	}
	var major models.Major
	err := db.First(&major, majorID).Error
	return major, err
}

func (r *GormMajorRepository) List(_ context.Context, expandSubjects bool) ([]models.Major, error) {
	db := r.db
	if expandSubjects {
		db = expandSubjectRefs(db)
	}
	var majors []models.Major
	err := db.Order("name ASC").Find(&majors).Error
	return majors, err
}

func (r *GormMajorRepository) CountByName(_ context.Context, name string, excludeID uint) (int64, error) {
	query := r.db.Model(&models.Major{}).Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *GormMajorRepository) UpdateByID(_ context.Context, majorID uint, updates map[string]interface{}) error {
	result := r.db.Model(&models.Major{}).Where("id = ?", majorID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormMajorRepository) ReplaceSubjects(_ context.Context, majorID uint, subjectIDs []uint) error {
	subjects := make([]models.Subject, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		subjects = append(subjects, models.Subject{ID: id})
	}
	return r.db.Model(&models.Major{ID: majorID}).Association("Subjects").Replace(subjects)
}

func (r *GormMajorRepository) DeleteByID(_ context.Context, majorID uint) error {
	result := r.db.Select("Subjects").Delete(&models.Major{ID: majorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
