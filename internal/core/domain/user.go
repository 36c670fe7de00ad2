package domain

import (
	"context"
	"time"
)

// User is a registered account. Password holds the bcrypt hash and is never
// serialized outward.
type User struct {
	ID        int64
	Email     string
	LastName  string
	FirstName string
	Password  string
	Admin     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type UserRepository interface {
	// GetByID returns the user with the given id.
	// Returns (nil, nil) when no user is found.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns the user with the given login email.
	// Returns (nil, nil) when no user is found.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail returns true when a user with the given email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user and fills in the generated id and timestamps.
	Create(ctx context.Context, user *User) error

	// Delete removes the user with the given id together with any participant
	// rows referencing it. Returns false when no such user existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
