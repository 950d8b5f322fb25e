package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"formhub/internal/dto"
	"formhub/internal/markdown"
	"formhub/internal/model"
	"formhub/internal/repository"
)

const homeListLimit = 5

type FormService interface {
	Create(req dto.FormCreateRequest) (uint, error)
	GetByPageID(pageID string) (*dto.FormDocument, error)
	GetByCreator(creatorID uuid.UUID) ([]dto.FormResponse, error)
	Latest() ([]dto.FormSummary, error)
	Popular() ([]dto.PopularFormSummary, error)
	Search(term string) ([]dto.FormSearchResult, error)
	Delete(formID uint) error
}

type formService struct {
	formRepo repository.FormRepository
	userRepo repository.UserRepository
	db       *gorm.DB
}

func NewFormService(formRepo repository.FormRepository, userRepo repository.UserRepository, db *gorm.DB) FormService {
	return &formService{formRepo: formRepo, userRepo: userRepo, db: db}
}

// Create persists the form with its questions, options, tags and access
// grants in one transaction. Question and option positions are derived from
// submission order.
func (s *formService) Create(req dto.FormCreateRequest) (uint, error) {
	if !req.IsPublic {
		if len(req.UsersWithAccess) == 0 {
			return 0, fmt.Errorf("%w: users_with_access is required for private forms", ErrValidation)
		}
		count, err := s.userRepo.CountByIDs(req.UsersWithAccess)
		if err != nil {
			return 0, fmt.Errorf("verifying access users: %w", err)
		}
		if count != int64(len(req.UsersWithAccess)) {
			return 0, fmt.Errorf("%w: some access users are not registered", ErrValidation)
		}
	}

	form := model.Form{
		PageID:              req.PageID,
		Title:               req.Title,
		TitleMarkdown:       markdown.Render(req.Title),
		Description:         req.Description,
		DescriptionMarkdown: markdown.Render(req.Description),
		Topic:               req.Topic,
		ImageURL:            req.ImageURL,
		IsPublic:            req.IsPublic,
		CreatorID:           req.CreatorID,
	}
	for i, q := range req.Questions {
		question := model.Question{
			Text:          q.Text,
			Type:          q.Type,
			IsRequired:    q.IsRequired,
			Position:      i + 1,
			ShowInResults: q.ShowInResults,
		}
		for j, o := range q.Options {
			question.Options = append(question.Options, model.AnswerOption{
				Text:      o.Text,
				Position:  j + 1,
				IsCorrect: o.IsCorrect,
			})
		}
		form.Questions = append(form.Questions, question)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return err
		}
		if err := linkTags(tx, form.ID, req.Tags); err != nil {
			return err
		}
		if !req.IsPublic {
			return insertGrants(tx, form.ID, req.UsersWithAccess)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("pageID", req.PageID).Msg("Create form: transaction rolled back")
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("page slug %q: %w", req.PageID, ErrConflict)
		}
		return 0, fmt.Errorf("creating form: %w", err)
	}
	return form.ID, nil
}

func (s *formService) GetByPageID(pageID string) (*dto.FormDocument, error) {
	rows, err := s.formRepo.FindDetailRowsByPageID(pageID)
	if err != nil {
		log.Error().Err(err).Str("pageID", pageID).Msg("GetByPageID: detail query failed")
		return nil, fmt.Errorf("fetching form %q: %w", pageID, err)
	}
	return AssembleFormDocument(rows)
}

func (s *formService) GetByCreator(creatorID uuid.UUID) ([]dto.FormResponse, error) {
	forms, err := s.formRepo.FindByCreator(creatorID)
	if err != nil {
		return nil, fmt.Errorf("fetching forms for creator: %w", err)
	}
	if len(forms) == 0 {
		return nil, ErrNotFound
	}
	var resp []dto.FormResponse
	if err := copier.Copy(&resp, &forms); err != nil {
		return nil, fmt.Errorf("preparing form list: %w", err)
	}
	return resp, nil
}

func (s *formService) Latest() ([]dto.FormSummary, error) {
	forms, err := s.formRepo.FindLatestPublic(homeListLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching latest forms: %w", err)
	}
	summaries := make([]dto.FormSummary, 0, len(forms))
	for _, f := range forms {
		summaries = append(summaries, dto.FormSummary{
			FormID:      f.ID,
			PageID:      f.PageID,
			Title:       f.Title,
			Description: f.Description,
			ImageURL:    f.ImageURL,
		})
	}
	return summaries, nil
}

func (s *formService) Popular() ([]dto.PopularFormSummary, error) {
	rows, err := s.formRepo.FindPopularPublic(homeListLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching popular forms: %w", err)
	}
	summaries := make([]dto.PopularFormSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, dto.PopularFormSummary{
			FormSummary: dto.FormSummary{
				FormID:      r.FormID,
				PageID:      r.PageID,
				Title:       r.Title,
				Description: r.Description,
				ImageURL:    r.ImageURL,
			},
			FilledCount: r.FilledCount,
		})
	}
	return summaries, nil
}

func (s *formService) Search(term string) ([]dto.FormSearchResult, error) {
	forms, err := s.formRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("searching forms: %w", err)
	}
	if len(forms) == 0 {
		return nil, ErrNotFound
	}
	results := make([]dto.FormSearchResult, 0, len(forms))
	for _, f := range forms {
		results = append(results, dto.FormSearchResult{FormID: f.ID, PageID: f.PageID, Title: f.Title})
	}
	return results, nil
}

func (s *formService) Delete(formID uint) error {
	if _, err := s.formRepo.FindByID(formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return fmt.Errorf("loading form %d: %w", formID, err)
	}
	if err := s.formRepo.Delete(formID); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Delete form failed")
		return fmt.Errorf("deleting form %d: %w", formID, err)
	}
	return nil
}
