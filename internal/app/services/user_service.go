package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
)

// userService implements UserService on top of a UserStore
type userService struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) UserService {
	return &userService{
		users: users,
	}
}

// ListUsers retrieves all users
func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAll(ctx)
}

// RegisterUser creates a user unless the email is already taken. Uniqueness
// is enforced by the store's unique index, not a check-then-insert, so two
// concurrent registrations for the same address cannot both succeed.
func (s *userService) RegisterUser(ctx context.Context, user *models.User) (bool, error) {
	if strings.TrimSpace(user.Email) == "" {
		return false, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	// Role absence implies student.
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetRole looks up a user's role by email
func (s *userService) GetRole(ctx context.Context, email string) (models.RoleType, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// UpdateUser applies a partial-field patch to a user
func (s *userService) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) error {
	if patch.Role != nil && *patch.Role != models.RoleStudent && *patch.Role != models.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *patch.Role)
	}
	return s.users.Update(ctx, id, patch)
}
