package v1

import (
	"context"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// TeacherService implements read-only teacher lookups.
type TeacherService struct {
	teachers domain.TeacherRepository
}

// NewTeacherService creates a new TeacherService with the given repository.
func NewTeacherService(teachers domain.TeacherRepository) *TeacherService {
	return &TeacherService{teachers: teachers}
}

// GetByID is a pure read. A missing id is an explicit (nil, nil).
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}

// FindAll returns every teacher.
func (s *TeacherService) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	return s.teachers.FindAll(ctx)
}
