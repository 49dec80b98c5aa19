package models

import "time"

type Subject struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Code            string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	ManagingFaculty string    `gorm:"type:varchar(100);not null" json:"managing_faculty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
