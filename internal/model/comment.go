package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment snapshots the author's name at creation time.
type Comment struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	FormID      uint      `json:"form_id" gorm:"not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	UserName    string    `json:"user_name"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	CommentedAt time.Time `json:"commented_at" gorm:"autoCreateTime"`
}
