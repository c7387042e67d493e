package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/senshi-dojo/dojo-backend/internal/model"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
)

// UserService handles member administration and profile updates.
type UserService struct {
	users repository.UserRepository
	auth  *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns every user, newest first.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Update applies patch to user id. When newPassword is non-nil it is hashed
// into the same statement. An empty patch returns the current record.
func (s *UserService) Update(ctx context.Context, id int, patch model.UserPatch, newPassword *string) (*model.User, error) {
	if patch.Email != nil {
		email := NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if newPassword != nil {
		if err := checkPasswordLength(*newPassword); err != nil {
			return nil, err
		}
		hash, err := s.auth.HashPassword(*newPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q", *patch.Role)
	}

	if patch.IsEmpty() {
		return s.users.GetByID(ctx, id)
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Verify marks a user as verified.
func (s *UserService) Verify(ctx context.Context, id int) (*model.User, error) {
	verified := true
	return s.users.Update(ctx, id, model.UserPatch{Verified: &verified})
}

// Delete removes a user by ID.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
