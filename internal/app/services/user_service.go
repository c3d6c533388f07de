package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/repositories"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

// UserService defines the interface for user profile operations.
type UserService interface {
	GetProfile(ctx context.Context, actor auth.Actor) (*dto.UserResponse, error)
	GetUser(ctx context.Context, actor auth.Actor, id int64) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, actor auth.Actor) ([]*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, actor auth.Actor, firstName, lastName string) (*dto.UserResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the acting user's own record.
func (s *userServiceImpl) GetProfile(ctx context.Context, actor auth.Actor) (*dto.UserResponse, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.GetUser(ctx, actor, actor.UserID)
}

// GetUser retrieves a user record. Admins may read anyone; other
// actors may read only themselves.
func (s *userServiceImpl) GetUser(ctx context.Context, actor auth.Actor, id int64) (*dto.UserResponse, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrUnauthenticated
	}
	if !actor.IsAdmin() && actor.UserID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
	}, nil
}

// ListUsers retrieves all user records. Admin only.
func (s *userServiceImpl) ListUsers(ctx context.Context, actor auth.Actor) ([]*dto.UserResponse, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, &dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      string(u.Role),
			IsActive:  u.IsActive,
		})
	}
	return responses, nil
}

// UpdateProfile updates the acting user's name fields. Email, role and
// activation state are not reachable through this path.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, actor auth.Actor, firstName, lastName string) (*dto.UserResponse, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	user.FirstName = firstName
	user.LastName = lastName

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
	}, nil
}
