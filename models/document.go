package models

import "time"

type DocumentStatus string

const (
	DocumentProcessing DocumentStatus = "PROCESSING"
	DocumentVisible    DocumentStatus = "VISIBLE"
	DocumentBlocked    DocumentStatus = "BLOCKED"
)

type Document struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	FileURL       string         `gorm:"type:varchar(1000);not null" json:"file_url"`
	FilePath      string         `gorm:"type:varchar(1000);not null" json:"-"`
	ThumbnailPath string         `gorm:"type:varchar(1000)" json:"-"`
	FileType      string         `gorm:"type:varchar(100);not null" json:"file_type"`
	FileSize      int64          `gorm:"not null" json:"file_size"`
	UploaderID    uint           `gorm:"not null;index" json:"uploader_id"`
	Uploader      *User          `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
	Status        DocumentStatus `gorm:"type:varchar(20);default:VISIBLE;index" json:"status"`
	SubjectID     uint           `gorm:"not null;index" json:"subject_id"`
	Subject       *Subject       `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	DocumentType  string         `gorm:"type:varchar(100);index" json:"document_type"`
	SchoolYear    string         `gorm:"type:varchar(20)" json:"school_year"`
	Faculty       string         `gorm:"type:varchar(100)" json:"faculty"`
	DownloadCount int64          `gorm:"default:0" json:"download_count"`
	ViewCount     int64          `gorm:"default:0" json:"view_count"`
	CreatedAt     time.Time      `gorm:"index" json:"upload_date"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
