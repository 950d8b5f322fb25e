package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnswerInput carries both a free-text value and an optional structured value
// (choice selections, scale positions) plus the question-type snapshot that
// is stored alongside the answer.
type AnswerInput struct {
	QuestionID   uint            `json:"question_id" binding:"required"`
	Text         string          `json:"text"`
	Value        json.RawMessage `json:"value"`
	QuestionType string          `json:"question_type" binding:"required"`
}

type SubmitFilledFormRequest struct {
	FormID    uint          `json:"form_id" binding:"required"`
	UserID    uuid.UUID     `json:"user_id" binding:"required"`
	UserName  string        `json:"user_name"`
	UserEmail string        `json:"user_email"`
	Answers   []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

type FilledFormCreatedResponse struct {
	Message      string `json:"message"`
	FilledFormID uint   `json:"filled_form_id"`
}

// UserFilledFormSummary lists one submission of a user together with the
// form it belongs to.
type UserFilledFormSummary struct {
	Title     string    `json:"title"`
	PageID    string    `json:"page_id"`
	CreatedAt time.Time `json:"created_at"`
	FilledAt  time.Time `json:"filled_at"`
}

type AnswerResponse struct {
	ID           uint            `json:"id"`
	QuestionID   uint            `json:"question_id"`
	Text         string          `json:"text"`
	Value        json.RawMessage `json:"value,omitempty"`
	QuestionType string          `json:"question_type"`
}

type FilledFormResponse struct {
	ID        uint      `json:"id"`
	FormID    uint      `json:"form_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Score     *float64  `json:"score,omitempty"`
	FilledAt  time.Time `json:"filled_at"`
}

// FilledFormDetail is one submission with the owning form, its questions
// (with options) and the answers keyed by question id.
type FilledFormDetail struct {
	FilledForm FilledFormResponse      `json:"filled_form"`
	Form       FormResponse            `json:"form"`
	Questions  []QuestionNode          `json:"questions"`
	Answers    map[uint]AnswerResponse `json:"answers"`
}

// FormResponsesOverview is the creator-facing view over everything collected
// for one form: submissions with their answers, plus moderation data.
type FormResponsesOverview struct {
	Form        FormResponse            `json:"form"`
	Questions   []QuestionNode          `json:"questions"`
	FilledForms []FilledFormWithAnswers `json:"filled_forms"`
	Comments    []CommentResponse       `json:"comments"`
	Likes       []LikeResponse          `json:"likes"`
}

type FilledFormWithAnswers struct {
	FilledFormResponse
	Answers []AnswerResponse `json:"answers"`
}
