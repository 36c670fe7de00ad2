package domain

import (
	"context"
	"time"
)

// Teacher gives sessions. Read-only for the API: teachers are seeded by the
// administrator directly in the database.
type Teacher struct {
	ID        int64
	LastName  string
	FirstName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeacherRepository defines the data-access contract for teacher lookups.
type TeacherRepository interface {
	// GetByID returns the teacher with the given id.
	// Returns (nil, nil) when no teacher is found.
	GetByID(ctx context.Context, id int64) (*Teacher, error)

	// FindAll returns every teacher ordered by id.
	FindAll(ctx context.Context) ([]Teacher, error)
}
