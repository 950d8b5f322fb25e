package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"formhub/internal/dto"
	"formhub/internal/model"
	"formhub/internal/repository"
)

// ResponseService covers the respondent side: submitting a filled form and
// reading submissions back, plus the creator-facing responses overview.
type ResponseService interface {
	Submit(req dto.SubmitFilledFormRequest) (uint, error)
	GetUserSubmissions(userID uuid.UUID) ([]dto.UserFilledFormSummary, error)
	GetSubmission(filledFormID uint) (*dto.FilledFormDetail, error)
	GetFormResponses(formID uint) (*dto.FormResponsesOverview, error)
	DeleteUserSubmissions(userID uuid.UUID) error
}

type responseService struct {
	formRepo    repository.FormRepository
	filledRepo  repository.FilledFormRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewResponseService(
	formRepo repository.FormRepository,
	filledRepo repository.FilledFormRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
) ResponseService {
	return &responseService{
		formRepo:    formRepo,
		filledRepo:  filledRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// Submit records one respondent's answers. Each answer stores the question
// type as submitted so later question edits cannot corrupt it.
func (s *responseService) Submit(req dto.SubmitFilledFormRequest) (uint, error) {
	if _, err := s.formRepo.FindByID(req.FormID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("form %d: %w", req.FormID, ErrNotFound)
		}
		return 0, fmt.Errorf("loading form %d: %w", req.FormID, err)
	}

	filled := model.FilledForm{
		FormID:    req.FormID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	}
	for _, a := range req.Answers {
		filled.Answers = append(filled.Answers, model.Answer{
			QuestionID:   a.QuestionID,
			Text:         a.Text,
			Value:        string(a.Value),
			QuestionType: a.QuestionType,
		})
	}

	if err := s.filledRepo.Create(&filled); err != nil {
		log.Error().Err(err).Uint("formID", req.FormID).Msg("Submit: failed to record filled form")
		return 0, fmt.Errorf("recording submission: %w", err)
	}
	return filled.ID, nil
}

func (s *responseService) GetUserSubmissions(userID uuid.UUID) ([]dto.UserFilledFormSummary, error) {
	rows, err := s.filledRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching submissions: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	var summaries []dto.UserFilledFormSummary
	if err := copier.Copy(&summaries, &rows); err != nil {
		return nil, fmt.Errorf("preparing submission list: %w", err)
	}
	return summaries, nil
}

func (s *responseService) GetSubmission(filledFormID uint) (*dto.FilledFormDetail, error) {
	filled, err := s.filledRepo.FindByIDWithAnswers(filledFormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("filled form %d: %w", filledFormID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading filled form %d: %w", filledFormID, err)
	}

	form, err := s.formRepo.FindByIDWithQuestions(filled.FormID)
	if err != nil {
		return nil, fmt.Errorf("loading form %d: %w", filled.FormID, err)
	}

	detail := dto.FilledFormDetail{
		FilledForm: filledFormToResponse(filled),
		Questions:  questionsToNodes(form.Questions),
		Answers:    make(map[uint]dto.AnswerResponse, len(filled.Answers)),
	}
	if err := copier.Copy(&detail.Form, form); err != nil {
		return nil, fmt.Errorf("preparing form data: %w", err)
	}
	for _, a := range filled.Answers {
		detail.Answers[a.QuestionID] = answerToResponse(a)
	}
	return &detail, nil
}

// GetFormResponses is the creator's overview: every submission with its
// answers, plus comments and likes. A form with zero submissions reports
// not-found, matching the legacy endpoint.
func (s *responseService) GetFormResponses(formID uint) (*dto.FormResponsesOverview, error) {
	filled, err := s.filledRepo.FindByFormIDWithAnswers(formID)
	if err != nil {
		return nil, fmt.Errorf("loading submissions for form %d: %w", formID, err)
	}
	if len(filled) == 0 {
		return nil, fmt.Errorf("form %d has no submissions: %w", formID, ErrNotFound)
	}

	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		return nil, fmt.Errorf("loading form %d: %w", formID, err)
	}
	comments, err := s.commentRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}
	likes, err := s.likeRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("loading likes: %w", err)
	}

	overview := dto.FormResponsesOverview{
		Questions:   questionsToNodes(form.Questions),
		FilledForms: make([]dto.FilledFormWithAnswers, 0, len(filled)),
		Comments:    commentsToResponses(comments),
		Likes:       make([]dto.LikeResponse, 0, len(likes)),
	}
	if err := copier.Copy(&overview.Form, form); err != nil {
		return nil, fmt.Errorf("preparing form data: %w", err)
	}
	for _, ff := range filled {
		entry := dto.FilledFormWithAnswers{FilledFormResponse: filledFormToResponse(&ff)}
		for _, a := range ff.Answers {
			entry.Answers = append(entry.Answers, answerToResponse(a))
		}
		overview.FilledForms = append(overview.FilledForms, entry)
	}
	for _, l := range likes {
		overview.Likes = append(overview.Likes, dto.LikeResponse{FormID: l.FormID, UserID: l.UserID})
	}
	return &overview, nil
}

func (s *responseService) DeleteUserSubmissions(userID uuid.UUID) error {
	if err := s.filledRepo.DeleteByUser(userID); err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("DeleteUserSubmissions failed")
		return fmt.Errorf("deleting submissions: %w", err)
	}
	return nil
}

func filledFormToResponse(f *model.FilledForm) dto.FilledFormResponse {
	return dto.FilledFormResponse{
		ID:        f.ID,
		FormID:    f.FormID,
		UserID:    f.UserID,
		UserName:  f.UserName,
		UserEmail: f.UserEmail,
		Score:     f.Score,
		FilledAt:  f.FilledAt,
	}
}

func answerToResponse(a model.Answer) dto.AnswerResponse {
	resp := dto.AnswerResponse{
		ID:           a.ID,
		QuestionID:   a.QuestionID,
		Text:         a.Text,
		QuestionType: a.QuestionType,
	}
	if a.Value != "" {
		resp.Value = json.RawMessage(a.Value)
	}
	return resp
}

func questionsToNodes(questions []model.Question) []dto.QuestionNode {
	nodes := make([]dto.QuestionNode, 0, len(questions))
	for _, q := range questions {
		node := dto.QuestionNode{
			QuestionID:    q.ID,
			Text:          q.Text,
			Type:          q.Type,
			IsRequired:    q.IsRequired,
			Position:      q.Position,
			ShowInResults: q.ShowInResults,
			Options:       []dto.OptionNode{},
		}
		for _, o := range q.Options {
			node.Options = append(node.Options, dto.OptionNode{
				OptionID:  o.ID,
				Text:      o.Text,
				Position:  o.Position,
				IsCorrect: o.IsCorrect,
			})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func commentsToResponses(comments []model.Comment) []dto.CommentResponse {
	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, dto.CommentResponse{
			ID:          c.ID,
			FormID:      c.FormID,
			UserID:      c.UserID,
			UserName:    c.UserName,
			Text:        c.Text,
			CommentedAt: c.CommentedAt,
		})
	}
	return resp
}
