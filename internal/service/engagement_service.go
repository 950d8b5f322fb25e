package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"formhub/internal/dto"
	"formhub/internal/model"
	"formhub/internal/repository"
)

// EngagementService handles likes and comments. Neither is ever edited in
// place; they are only created and deleted.
type EngagementService interface {
	CheckLike(formID uint, userID uuid.UUID) (bool, error)
	Like(req dto.LikeRequest) error
	Unlike(req dto.LikeRequest) error
	AddComment(req dto.CommentCreateRequest) (*dto.CommentResponse, error)
	DeleteComment(commentID uint) error
	GetComments(formID uint) ([]dto.CommentResponse, error)
}

type engagementService struct {
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewEngagementService(likeRepo repository.LikeRepository, commentRepo repository.CommentRepository) EngagementService {
	return &engagementService{likeRepo: likeRepo, commentRepo: commentRepo}
}

func (s *engagementService) CheckLike(formID uint, userID uuid.UUID) (bool, error) {
	liked, err := s.likeRepo.Exists(formID, userID)
	if err != nil {
		return false, fmt.Errorf("checking like: %w", err)
	}
	return liked, nil
}

func (s *engagementService) Like(req dto.LikeRequest) error {
	if err := s.likeRepo.Add(req.FormID, req.UserID); err != nil {
		log.Error().Err(err).Uint("formID", req.FormID).Msg("Like failed")
		return fmt.Errorf("liking form: %w", err)
	}
	return nil
}

func (s *engagementService) Unlike(req dto.LikeRequest) error {
	affected, err := s.likeRepo.Remove(req.FormID, req.UserID)
	if err != nil {
		return fmt.Errorf("removing like: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("like: %w", ErrNotFound)
	}
	return nil
}

func (s *engagementService) AddComment(req dto.CommentCreateRequest) (*dto.CommentResponse, error) {
	comment := model.Comment{
		FormID:   req.FormID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		log.Error().Err(err).Uint("formID", req.FormID).Msg("AddComment failed")
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	resp := commentsToResponses([]model.Comment{comment})[0]
	return &resp, nil
}

func (s *engagementService) DeleteComment(commentID uint) error {
	affected, err := s.commentRepo.DeleteByID(commentID)
	if err != nil {
		return fmt.Errorf("deleting comment %d: %w", commentID, err)
	}
	if affected == 0 {
		return fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	return nil
}

func (s *engagementService) GetComments(formID uint) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	if len(comments) == 0 {
		return nil, ErrNotFound
	}
	return commentsToResponses(comments), nil
}
