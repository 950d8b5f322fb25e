package model

import (
	"time"

	"github.com/google/uuid"
)

// Form is a creator-authored questionnaire definition. PageID is the
// externally addressable slug. The markdown columns hold sanitized HTML
// rendered from the title/description markdown source.
type Form struct {
	ID                  uint       `gorm:"primarykey" json:"id"`
	PageID              string     `json:"page_id" gorm:"uniqueIndex;not null"`
	Title               string     `json:"title" gorm:"not null"`
	TitleMarkdown       string     `json:"title_markdown" gorm:"type:text"`
	Description         string     `json:"description" gorm:"type:text"`
	DescriptionMarkdown string     `json:"description_markdown" gorm:"type:text"`
	Topic               string     `json:"topic"`
	ImageURL            string     `json:"image_url"`
	IsPublic            bool       `json:"is_public" gorm:"not null;default:true"`
	CreatorID           uuid.UUID  `json:"creator_id" gorm:"type:uuid;not null;index"`
	Questions           []Question `json:"questions,omitempty" gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Question types. Options and IsCorrect apply to the choice types only.
const (
	QuestionShortText    = "short_text"
	QuestionLongText     = "long_text"
	QuestionSingleChoice = "single_choice"
	QuestionMultiChoice  = "multi_choice"
	QuestionScale        = "scale"
)

// Position is a dense 1-based sequence within the owning form, re-derived
// from submission order on every write.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	FormID        uint           `json:"form_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Type          string         `json:"type" gorm:"not null"`
	IsRequired    bool           `json:"is_required" gorm:"not null;default:false"`
	Position      int            `json:"position" gorm:"not null"`
	ShowInResults bool           `json:"show_in_results" gorm:"not null;default:true"`
	Options       []AnswerOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type AnswerOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"type:text;not null"`
	Position   int    `json:"position" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}
