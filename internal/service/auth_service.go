package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"formhub/internal/dto"
	"formhub/internal/model"
	"formhub/internal/repository"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email %s: %w", req.Email, ErrConflict)
		}
		log.Error().Err(err).Msg("Register: failed to create user")
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return userToResponse(&user), nil
}

// Login compares the stored password verbatim, as the legacy deployments
// did. See DESIGN.md before exposing this to real traffic.
func (s *authService) Login(req dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("Login: lookup failed")
		return nil, fmt.Errorf("logging in: %w", err)
	}
	if user.Password != req.Password {
		return nil, ErrInvalidCredentials
	}
	return userToResponse(user), nil
}

func userToResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		IsBlocked: user.IsBlocked,
	}
}
