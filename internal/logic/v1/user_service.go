package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/middleware"
)

// UserService implements user lookups and the guarded self-deletion.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService with the given repository.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetByID is a pure read. A missing id is an explicit (nil, nil).
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Delete removes a user account. Only the account owner or an admin may do
// it; the guard runs after the existence check so a denied caller still gets
// 403, not 404, for an account they could name.
func (s *UserService) Delete(ctx context.Context, principal *domain.Principal, id int64) error {
	ctx, span := middleware.StartSpan(ctx, "user.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", id),
	))
	defer span.End()

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query user %d: %w", id, err)
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}

	if !Authorize(principal, user) {
		span.AddEvent("authorization.denied")
		return fmt.Errorf("delete user %d: %w", id, ErrForbidden)
	}

	if _, err := s.users.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	span.AddEvent("user.deleted")
	return nil
}
