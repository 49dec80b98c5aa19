package models

import "time"

type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleModerator UserRole = "MODERATOR"
	RoleAdmin     UserRole = "ADMIN"
)

type UserStatus string

const (
	UserActive  UserStatus = "ACTIVE"
	UserBlocked UserStatus = "BLOCKED"
)

type User struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName       string     `gorm:"type:varchar(100);not null" json:"full_name"`
	AvatarURL      string     `gorm:"type:varchar(500)" json:"avatar_url"`
	Role           UserRole   `gorm:"type:varchar(20);default:USER;index" json:"role"`
	Status         UserStatus `gorm:"type:varchar(20);default:ACTIVE;index" json:"status"`
	UploadsCount   int64      `gorm:"default:0" json:"uploads_count"`
	DownloadsCount int64      `gorm:"default:0" json:"downloads_count"`
	CreatedAt      time.Time  `gorm:"index" json:"joined_date"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
