package model

import "github.com/google/uuid"

// Like is unique per (form, user) pair.
type Like struct {
	FormID uint      `gorm:"primaryKey" json:"form_id"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
}
