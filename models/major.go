package models

import "time"

type Major struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Code        string    `gorm:"type:varchar(50)" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	Subjects    []Subject `gorm:"many2many:major_subjects" json:"subjects"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
