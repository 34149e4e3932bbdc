package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
)

// selectionService implements SelectionService on top of a SelectionStore
type selectionService struct {
	selections SelectionStore
}

// NewSelectionService creates a new selection service instance
func NewSelectionService(selections SelectionStore) SelectionService {
	return &selectionService{
		selections: selections,
	}
}

// ListSelections lists selections scoped to the caller's verified identity.
// No email parameter is an empty listing, not an error; asking for another
// user's email is forbidden.
func (s *selectionService) ListSelections(ctx context.Context, tokenEmail, queryEmail string) ([]*models.Selection, error) {
	if queryEmail == "" {
		return []*models.Selection{}, nil
	}

	if queryEmail != tokenEmail {
		return nil, apperrors.NewForbiddenError("forbidden access")
	}

	return s.selections.GetByEmail(ctx, queryEmail)
}

// AddSelection validates and persists a selection
func (s *selectionService) AddSelection(ctx context.Context, selection *models.Selection) error {
	if strings.TrimSpace(selection.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if selection.ClassID <= 0 {
		return fmt.Errorf("%w: class id must be positive", apperrors.ErrValidationFailed)
	}

	return s.selections.Create(ctx, selection)
}

// RemoveSelection deletes a selection by id
func (s *selectionService) RemoveSelection(ctx context.Context, id int64) error {
	return s.selections.Delete(ctx, id)
}
