package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
)

// Newly created classes await admin review before appearing as bookable.
const defaultClassStatus = "pending"

// classService implements ClassService on top of a ClassStore
type classService struct {
	classes ClassStore
}

// NewClassService creates a new class service instance
func NewClassService(classes ClassStore) ClassService {
	return &classService{
		classes: classes,
	}
}

// ListClasses retrieves all classes
func (s *classService) ListClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classes.GetAll(ctx)
}

// GetClass retrieves a class by id
func (s *classService) GetClass(ctx context.Context, id int64) (*models.Class, error) {
	return s.classes.GetByID(ctx, id)
}

// CreateClass validates and persists a new class
func (s *classService) CreateClass(ctx context.Context, class *models.Class) error {
	if strings.TrimSpace(class.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if class.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}

	if class.Status == "" {
		class.Status = defaultClassStatus
	}

	return s.classes.Create(ctx, class)
}

// UpdateClass applies a partial-field patch to a class
func (s *classService) UpdateClass(ctx context.Context, id int64, patch *models.ClassPatch) error {
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}
	return s.classes.Update(ctx, id, patch)
}
