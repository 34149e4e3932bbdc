package services

import (
	"context"

	"github.com/lenslearn/backend/internal/app/models"
)

// instructorService implements InstructorService on top of an InstructorStore
type instructorService struct {
	instructors InstructorStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructors InstructorStore) InstructorService {
	return &instructorService{
		instructors: instructors,
	}
}

func (s *instructorService) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	return s.instructors.GetAll(ctx)
}
