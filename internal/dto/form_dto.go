package dto

import (
	"time"

	"github.com/google/uuid"
)

// OptionInput describes one desired answer option. OptionID refers to an
// existing row when present; an unknown or missing id means insert-as-new.
type OptionInput struct {
	OptionID  *uint  `json:"option_id"`
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionInput describes one desired question. Stored positions are derived
// from the submission order of the slice, never taken from the client.
type QuestionInput struct {
	QuestionID    *uint         `json:"question_id"`
	Text          string        `json:"text" binding:"required"`
	Type          string        `json:"type" binding:"required,oneof=short_text long_text single_choice multi_choice scale"`
	IsRequired    bool          `json:"is_required"`
	ShowInResults bool          `json:"show_in_results"`
	Options       []OptionInput `json:"options" binding:"omitempty,dive"`
}

type FormCreateRequest struct {
	PageID          string          `json:"page_id" binding:"required"`
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	Topic           string          `json:"topic"`
	ImageURL        string          `json:"image_url"`
	IsPublic        bool            `json:"is_public"`
	CreatorID       uuid.UUID       `json:"creator_id" binding:"required"`
	Questions       []QuestionInput `json:"questions" binding:"required,min=1,dive"`
	Tags            []string        `json:"tags"`
	UsersWithAccess []uuid.UUID     `json:"users_with_access"`
}

// FormEditRequest is the desired state handed to the reconciler. For private
// forms UsersWithAccess must be present; an empty list is legal and leaves
// the form reachable only by its creator.
type FormEditRequest struct {
	PageID          string          `json:"page_id" binding:"required"`
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	Topic           string          `json:"topic"`
	ImageURL        string          `json:"image_url"`
	IsPublic        bool            `json:"is_public"`
	Questions       []QuestionInput `json:"questions" binding:"required,dive"`
	Tags            []string        `json:"tags"`
	UsersWithAccess []uuid.UUID     `json:"users_with_access"`
}

type FormCreatedResponse struct {
	Message string `json:"message"`
	FormID  uint   `json:"form_id"`
}

// --- Assembled form document (nested read model) ---

type OptionNode struct {
	OptionID  uint   `json:"option_id"`
	Text      string `json:"text"`
	Position  int    `json:"position"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionNode struct {
	QuestionID    uint         `json:"question_id"`
	Text          string       `json:"text"`
	Type          string       `json:"type"`
	IsRequired    bool         `json:"is_required"`
	Position      int          `json:"position"`
	ShowInResults bool         `json:"show_in_results"`
	Options       []OptionNode `json:"options"`
}

type TagResponse struct {
	TagID uint   `json:"tag_id"`
	Text  string `json:"text"`
}

type AccessUser struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

type FormDocument struct {
	FormID              uint           `json:"form_id"`
	PageID              string         `json:"page_id"`
	Title               string         `json:"title"`
	TitleMarkdown       string         `json:"title_markdown"`
	Description         string         `json:"description"`
	DescriptionMarkdown string         `json:"description_markdown"`
	Topic               string         `json:"topic"`
	ImageURL            string         `json:"image_url"`
	IsPublic            bool           `json:"is_public"`
	CreatorID           uuid.UUID      `json:"creator_id"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	Tags                []TagResponse  `json:"tags"`
	Questions           []QuestionNode `json:"questions"`
	UsersWithAccess     []AccessUser   `json:"users_with_access,omitempty"`
}

// --- Listings ---

type FormSummary struct {
	FormID      uint   `json:"form_id"`
	PageID      string `json:"page_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type PopularFormSummary struct {
	FormSummary
	FilledCount int64 `json:"filled_count"`
}

type FormSearchResult struct {
	FormID uint   `json:"form_id"`
	PageID string `json:"page_id"`
	Title  string `json:"title"`
}

type FormResponse struct {
	ID          uint      `json:"id"`
	PageID      string    `json:"page_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Topic       string    `json:"topic"`
	ImageURL    string    `json:"image_url"`
	IsPublic    bool      `json:"is_public"`
	CreatorID   uuid.UUID `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
