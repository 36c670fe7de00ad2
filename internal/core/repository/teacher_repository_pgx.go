package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// PgxTeacherRepository implements domain.TeacherRepository using pgxpool.
type PgxTeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new PgxTeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *PgxTeacherRepository {
	return &PgxTeacherRepository{pool: pool}
}

// GetByID returns the teacher with the given id.
// Returns (nil, nil) when no teacher is found.
func (r *PgxTeacherRepository) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	query := `SELECT id, last_name, first_name, created_at, updated_at FROM teachers WHERE id = $1`

	var t domain.Teacher
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.LastName, &t.FirstName, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// FindAll returns every teacher ordered by id.
func (r *PgxTeacherRepository) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	query := `SELECT id, last_name, first_name, created_at, updated_at FROM teachers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := make([]domain.Teacher, 0)
	for rows.Next() {
		var t domain.Teacher
		if err := rows.Scan(&t.ID, &t.LastName, &t.FirstName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
