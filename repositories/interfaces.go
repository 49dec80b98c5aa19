package repositories

import (
	"context"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/models"
)

type ListDocumentsInput struct {
	Search       string
	SubjectIDs   []uint
	DocumentType string
	UploaderID   uint                    // 0 matches any uploader
	Statuses     []models.DocumentStatus // empty matches any status
	SortBy       string                  // "upload_date" or "downloads"
	Order        string                  // "asc" or "desc"
	Offset       int
	Limit        int
}

type ListUsersInput struct {
	Search string
	Role   models.UserRole // "" matches any role
	SortBy string          // "joined_date", "full_name" or "email"
	Order  string
	Offset int
	Limit  int
}

// DailyCount is one calendar-day bucket of an upload histogram.
type DailyCount struct {
	Date      string `json:"date"`
	Count     int64  `json:"count"`
	Downloads int64  `json:"total_downloads"`
}

// PlatformStats is the singleton aggregate counters record.
type PlatformStats struct {
	TotalUploads   int64 `json:"total_uploads"`
	TotalDownloads int64 `json:"total_downloads"`
	ActiveUsers    int64 `json:"active_users"`
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, userID uint) (models.User, error)
	Count(ctx context.Context, in ListUsersInput) (int64, error)
	List(ctx context.Context, in ListUsersInput) ([]models.User, error)
	UpdateByID(ctx context.Context, userID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, userID uint) error
	AddUploadsCount(ctx context.Context, userID uint, delta int64) error
	AddDownloadsCount(ctx context.Context, userID uint, delta int64) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, docID uint, expand bool) (models.Document, error)
	Count(ctx context.Context, in ListDocumentsInput) (int64, error)
	List(ctx context.Context, in ListDocumentsInput) ([]models.Document, error)
	UpdateByID(ctx context.Context, docID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, docID uint) error
	AddViewCount(ctx context.Context, docID uint, delta int64) error
	AddDownloadCount(ctx context.Context, docID uint, delta int64) error
	CountUploadsByDay(ctx context.Context, since time.Time, until *time.Time, uploaderID uint) ([]DailyCount, error)
}

type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, subjectID uint) (models.Subject, error)
	List(ctx context.Context) ([]models.Subject, error)
	CountByNameOrCode(ctx context.Context, name, code string, excludeID uint) (int64, error)
	UpdateByID(ctx context.Context, subjectID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, subjectID uint) error
}

type MajorRepository interface {
	Create(ctx context.Context, major *models.Major) error
	GetByID(ctx context.Context, majorID uint, expandSubjects bool) (models.Major, error)
	List(ctx context.Context, expandSubjects bool) ([]models.Major, error)
	CountByName(ctx context.Context, name string, excludeID uint) (int64, error)
	UpdateByID(ctx context.Context, majorID uint, updates map[string]interface{}) error
	ReplaceSubjects(ctx context.Context, majorID uint, subjectIDs []uint) error
	DeleteByID(ctx context.Context, majorID uint) error
}

type LogRepository interface {
	Create(ctx context.Context, entry *models.Log) error
}

// StatsRepository maintains the platform-wide counters. Increments must be
// atomic at the storage layer so concurrent requests never lose updates.
type StatsRepository interface {
	Get(ctx context.Context) (PlatformStats, error)
	IncrTotalUploads(ctx context.Context, delta int64) error
	IncrTotalDownloads(ctx context.Context, delta int64) error
	IncrActiveUsers(ctx context.Context, delta int64) error
}

type Container struct {
	Users     UserRepository
	Documents DocumentRepository
	Subjects  SubjectRepository
	Majors    MajorRepository
	Logs      LogRepository
	Stats     StatsRepository
}
