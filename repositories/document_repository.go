package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/models"

	"gorm.io/gorm"
)

type GormDocumentRepository struct {
	db *gorm.DB
}

func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// expandRefs attaches the uploader and subject projections the read
// paths expose: uploader {fullName, avatarUrl}, subject {name, code}.
func expandRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Uploader", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "full_name", "avatar_url")
		}).
		Preload("Subject", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "code", "managing_faculty")
		})
}

func (r *GormDocumentRepository) documentsQuery(in ListDocumentsInput) *gorm.DB {
	query := r.db.Model(&models.Document{})
	if in.Search != "" {
		pattern := "%" + strings.ToLower(in.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if len(in.SubjectIDs) > 0 {
		query = query.Where("subject_id IN ?", in.SubjectIDs)
	}
	if in.DocumentType != "" {
		query = query.Where("document_type = ?", in.DocumentType)
	}
	if in.UploaderID != 0 {
		query = query.Where("uploader_id = ?", in.UploaderID)
	}
	if len(in.Statuses) > 0 {
		query = query.Where("status IN ?", in.Statuses)
	}
	return query
}

func (r *GormDocumentRepository) Create(_ context.Context, doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *GormDocumentRepository) GetByID(_ context.Context, docID uint, expand bool) (models.Document, error) {
	db := r.db
	if expand {
		db = expandRefs(db)
	}
	var doc models.Document
	err := db.First(&doc, docID).Error
	return doc, err
}

func (r *GormDocumentRepository) Count(_ context.Context, in ListDocumentsInput) (int64, error) {
	var total int64
	err := r.documentsQuery(in).Count(&total).Error
	return total, err
}

func (r *GormDocumentRepository) List(_ context.Context, in ListDocumentsInput) ([]models.Document, error) {
	sortColumns := map[string]string{
		"upload_date": "created_at",
		"downloads":   "download_count",
	}
	sortCol := sortColumns[in.SortBy]
	if sortCol == "" {
		sortCol = "created_at"
	}

	order := strings.ToUpper(in.Order)
	if order != "ASC" {
		order = "DESC"
	}

	var docs []models.Document
	err := expandRefs(r.documentsQuery(in)).
		Order(sortCol + " " + order).
		Offset(in.Offset).Limit(in.Limit).
		Find(&docs).Error
	return docs, err
}

func (r *GormDocumentRepository) UpdateByID(_ context.Context, docID uint, updates map[string]interface{}) error {
	result := r.db.Model(&models.Document{}).Where("id = ?", docID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormDocumentRepository) DeleteByID(_ context.Context, docID uint) error {
	result := r.db.Delete(&models.Document{}, docID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormDocumentRepository) AddViewCount(_ context.Context, docID uint, delta int64) error {
	return r.db.Model(&models.Document{}).
		Where("id = ?", docID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}

func (r *GormDocumentRepository) AddDownloadCount(_ context.Context, docID uint, delta int64) error {
	return r.db.Model(&models.Document{}).
		Where("id = ?", docID).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", delta)).Error
}

func (r *GormDocumentRepository) CountUploadsByDay(_ context.Context, since time.Time, until *time.Time, uploaderID uint) ([]DailyCount, error) {
	query := r.db.Model(&models.Document{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS count, COALESCE(SUM(download_count), 0) AS downloads").
		Where("created_at >= ?", since)
	if until != nil {
		query = query.Where("created_at <= ?", *until)
	}
	if uploaderID != 0 {
		query = query.Where("uploader_id = ?", uploaderID)
	}

	var buckets []DailyCount
	err := query.Group("DATE_FORMAT(created_at, '%Y-%m-%d')").Order("date ASC").Scan(&buckets).Error
	return buckets, err
}
