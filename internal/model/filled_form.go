package model

import (
	"time"

	"github.com/google/uuid"
)

// FilledForm snapshots the respondent's name and email at submission time so
// later user edits do not rewrite history.
type FilledForm struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FormID    uint      `json:"form_id" gorm:"not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Score     *float64  `json:"score,omitempty"`
	FilledAt  time.Time `json:"filled_at" gorm:"autoCreateTime"`
	Answers   []Answer  `json:"answers,omitempty" gorm:"foreignKey:FilledFormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Answer carries a question-type snapshot copied at submission time, so
// editing a question later does not corrupt historical answers. Value holds
// the serialized structured value for choice/scale questions.
type Answer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	FilledFormID uint      `json:"filled_form_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	Text         string    `json:"text" gorm:"type:text"`
	Value        string    `json:"value" gorm:"type:text"`
	QuestionType string    `json:"question_type"`
	CreatedAt    time.Time `json:"created_at"`
}
