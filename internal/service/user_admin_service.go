package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"formhub/internal/dto"
	"formhub/internal/model"
	"formhub/internal/repository"
)

type UserAdminService interface {
	ListUsers() ([]dto.UserResponse, error)
	SearchUsers(term string) ([]dto.UserResponse, error)
	ApplyAction(req dto.UserActionRequest) error
	DeleteUsers(req dto.UserDeleteRequest) error
}

type userAdminService struct {
	userRepo repository.UserRepository
}

func NewUserAdminService(userRepo repository.UserRepository) UserAdminService {
	return &userAdminService{userRepo: userRepo}
}

func (s *userAdminService) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return usersToResponses(users), nil
}

func (s *userAdminService) SearchUsers(term string) ([]dto.UserResponse, error) {
	users, err := s.userRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	return usersToResponses(users), nil
}

// ApplyAction matches the action enum exhaustively; anything else is a
// validation failure before storage is touched.
func (s *userAdminService) ApplyAction(req dto.UserActionRequest) error {
	var err error
	switch req.Action {
	case dto.UserActionBlock:
		err = s.userRepo.SetBlocked(req.UserIDs, true)
	case dto.UserActionUnblock:
		err = s.userRepo.SetBlocked(req.UserIDs, false)
	case dto.UserActionMakeAdmin:
		err = s.userRepo.SetAdmin(req.UserIDs, true)
	case dto.UserActionRemoveAdmin:
		err = s.userRepo.SetAdmin(req.UserIDs, false)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrValidation, req.Action)
	}
	if err != nil {
		log.Error().Err(err).Str("action", string(req.Action)).Msg("ApplyAction failed")
		return fmt.Errorf("applying %s: %w", req.Action, err)
	}
	return nil
}

func (s *userAdminService) DeleteUsers(req dto.UserDeleteRequest) error {
	if err := s.userRepo.DeleteByIDs(req.UserIDs); err != nil {
		log.Error().Err(err).Int("count", len(req.UserIDs)).Msg("DeleteUsers failed")
		return fmt.Errorf("deleting users: %w", err)
	}
	return nil
}

func usersToResponses(users []model.User) []dto.UserResponse {
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, *userToResponse(&u))
	}
	return resp
}
