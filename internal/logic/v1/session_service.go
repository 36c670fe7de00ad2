package v1

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/middleware"
)

// SessionService owns the subscribe/unsubscribe state machine on a session's
// participant set, plus session CRUD. Membership transitions for one session
// are serialized by a striped lock and persisted as a single unit, so two
// concurrent subscribes for the same (session, user) pair cannot both win on
// one instance.
//
// The existence checks of Participate and NoLongerParticipate are
// intentionally asymmetric: subscribing requires a real user record,
// unsubscribing only requires the id to be on the participant list. That is
// the observed product behavior, not an oversight.
type SessionService struct {
	sessions domain.SessionRepository
	users    domain.UserRepository
	locks    sessionLocks
}

// NewSessionService creates a new SessionService with the given repository
// dependencies.
func NewSessionService(sessions domain.SessionRepository, users domain.UserRepository) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// Participate adds the user to the session's participant set.
// Fails with ErrNotFound when session or user does not exist, and with
// ErrAlreadyParticipating when the user is already subscribed.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	ctx, span := middleware.StartSpan(ctx, "session.participate", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", sessionID),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	mu := s.locks.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query session %d: %w", sessionID, err)
	}
	if session == nil {
		return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query user %d: %w", userID, err)
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	if session.HasParticipant(userID) {
		span.AddEvent("membership.rejected")
		return fmt.Errorf("session %d user %d: %w", sessionID, userID, ErrAlreadyParticipating)
	}

	session.Users = append(session.Users, userID)
	if _, err := s.sessions.Update(ctx, session); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save session %d: %w", sessionID, err)
	}

	span.AddEvent("membership.added")
	return nil
}

// NoLongerParticipate removes the user from the session's participant set.
// Fails with ErrNotFound when the session does not exist and with
// ErrNotParticipating when the id is not on the list. The user record itself
// is not checked: only list membership matters here.
func (s *SessionService) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	ctx, span := middleware.StartSpan(ctx, "session.no_longer_participate", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", sessionID),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	mu := s.locks.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("query session %d: %w", sessionID, err)
	}
	if session == nil {
		return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}

	if !session.HasParticipant(userID) {
		span.AddEvent("membership.rejected")
		return fmt.Errorf("session %d user %d: %w", sessionID, userID, ErrNotParticipating)
	}

	kept := session.Users[:0]
	for _, id := range session.Users {
		if id != userID {
			kept = append(kept, id)
		}
	}
	session.Users = kept

	if _, err := s.sessions.Update(ctx, session); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save session %d: %w", sessionID, err)
	}

	span.AddEvent("membership.removed")
	return nil
}

// Create validates and persists a new session, returning it with generated id
// and timestamps.
func (s *SessionService) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	ctx, span := middleware.StartSpan(ctx, "session.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if err := validateSession(session); err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int64("session.id", session.ID))
	return session, nil
}

// Update replaces every field of the session with the given id, participant
// set included. Fails with ErrNotFound when the id does not exist.
func (s *SessionService) Update(ctx context.Context, id int64, session *domain.Session) (*domain.Session, error) {
	ctx, span := middleware.StartSpan(ctx, "session.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", id),
	))
	defer span.End()

	if err := validateSession(session); err != nil {
		return nil, err
	}

	mu := s.locks.lock(id)
	mu.Lock()
	defer mu.Unlock()

	session.ID = id
	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save session %d: %w", id, err)
	}
	if !updated {
		return nil, fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return session, nil
}

// Delete removes the session by id, participants and all.
// Fails with ErrNotFound when the id does not exist.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	ctx, span := middleware.StartSpan(ctx, "session.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", id),
	))
	defer span.End()

	deleted, err := s.sessions.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID is a pure read. A missing id is an explicit (nil, nil), not an
// error; the boundary layer maps it to 404.
func (s *SessionService) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

// FindAll returns every session.
func (s *SessionService) FindAll(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.FindAll(ctx)
}

func validateSession(session *domain.Session) error {
	if session == nil {
		return fmt.Errorf("nil session: %w", ErrInvalidSession)
	}
	if strings.TrimSpace(session.Name) == "" {
		return fmt.Errorf("blank name: %w", ErrInvalidSession)
	}
	if len(session.Description) > 2500 {
		return fmt.Errorf("description too long: %w", ErrInvalidSession)
	}
	return nil
}
