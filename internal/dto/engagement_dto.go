package dto

import (
	"time"

	"github.com/google/uuid"
)

type LikeRequest struct {
	FormID uint      `json:"form_id" binding:"required"`
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type LikeStatusResponse struct {
	Liked bool `json:"liked"`
}

type LikeResponse struct {
	FormID uint      `json:"form_id"`
	UserID uuid.UUID `json:"user_id"`
}

type CommentCreateRequest struct {
	FormID   uint      `json:"form_id" binding:"required"`
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	UserName string    `json:"user_name" binding:"required"`
	Text     string    `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	FormID      uint      `json:"form_id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	Text        string    `json:"text"`
	CommentedAt time.Time `json:"commented_at"`
}
