package service

import (
	"fmt"

	"formhub/internal/dto"
	"formhub/internal/repository"
)

type TagService interface {
	List() ([]dto.TagResponse, error)
	Search(term string) ([]dto.TagResponse, error)
	FormsByTag(tagID uint) ([]dto.FormSummary, error)
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) List() ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching tags: %w", err)
	}
	resp := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, dto.TagResponse{TagID: t.ID, Text: t.Text})
	}
	return resp, nil
}

func (s *tagService) Search(term string) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("searching tags: %w", err)
	}
	resp := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, dto.TagResponse{TagID: t.ID, Text: t.Text})
	}
	return resp, nil
}

func (s *tagService) FormsByTag(tagID uint) ([]dto.FormSummary, error) {
	forms, err := s.tagRepo.FindPublicFormsByTag(tagID)
	if err != nil {
		return nil, fmt.Errorf("fetching forms for tag %d: %w", tagID, err)
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
