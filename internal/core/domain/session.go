package domain

import (
	"context"
	"time"
)

// Session is a bookable group class. Users holds the ids of participating
// users; the membership invariant is that an id appears at most once.
// TeacherID is an optional reference — a session does not own its teacher.
type Session struct {
	ID          int64
	Name        string
	Date        time.Time
	TeacherID   *int64
	Description string
	Users       []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasParticipant reports whether the given user id is in the participant list.
func (s *Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// SessionRepository defines the data-access contract for session operations.
// Save-style writes (Update) persist the session and its full participant set
// as a single unit.
type SessionRepository interface {
	// GetByID returns the session with the given id, participants included.
	// Returns (nil, nil) when no session is found.
	GetByID(ctx context.Context, id int64) (*Session, error)

	// FindAll returns every session ordered by id, participants included.
	FindAll(ctx context.Context) ([]Session, error)

	// Create inserts a new session with its participant set and fills in the
	// generated id and timestamps.
	Create(ctx context.Context, session *Session) error

	// Update rewrites the session row and replaces its participant set in one
	// transaction. Returns false when no such session existed.
	Update(ctx context.Context, session *Session) (bool, error)

	// Delete removes the session and its participant rows.
	// Returns false when no such session existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
