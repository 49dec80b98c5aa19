package models

import "time"

// Log is an append-only audit trail entry. Rows are never updated or deleted.
type Log struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   uint      `gorm:"not null;index" json:"actor_id"`
	Action    string    `gorm:"type:varchar(50);not null;index" json:"action"`
	TargetID  uint      `gorm:"not null" json:"target_id"`
	Detail    string    `gorm:"type:varchar(500)" json:"detail"`
	CreatedAt time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}

// Audit action labels.
const (
	ActionBlockUser         = "BLOCK_USER"
	ActionUnblockUser       = "UNBLOCK_USER"
	ActionDeleteUser        = "DELETE_USER"
	ActionChangeRole        = "CHANGE_ROLE"
	ActionDelegateAdmin     = "DELEGATE_ADMIN"
	ActionResetPassword     = "RESET_PASSWORD"
	ActionBlockDocument     = "BLOCK_DOCUMENT"
	ActionUnblockDocument   = "UNBLOCK_DOCUMENT"
	ActionDeleteDocument    = "DELETE_DOCUMENT"
	ActionDeleteOwnDocument = "DELETE_OWN_DOCUMENT"
)
