package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// PgxSessionRepository implements domain.SessionRepository using pgxpool.
// The participant set lives in the participate join table and is loaded and
// rewritten together with the session row.
type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PgxSessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{pool: pool}
}

const sessionSelect = `
	SELECT s.id, s.name, s.date, s.teacher_id, s.description, s.created_at, s.updated_at,
	       COALESCE(array_agg(p.user_id ORDER BY p.user_id) FILTER (WHERE p.user_id IS NOT NULL), '{}')
	FROM sessions s
	LEFT JOIN participate p ON p.session_id = s.id
`

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID, &s.Name, &s.Date, &s.TeacherID, &s.Description,
		&s.CreatedAt, &s.UpdatedAt, &s.Users,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID returns the session with the given id, participants included.
// Returns (nil, nil) when no session is found.
func (r *PgxSessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := sessionSelect + ` WHERE s.id = $1 GROUP BY s.id`

	s, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// FindAll returns every session ordered by id, participants included.
func (r *PgxSessionRepository) FindAll(ctx context.Context) ([]domain.Session, error) {
	query := sessionSelect + ` GROUP BY s.id ORDER BY s.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Create inserts a new session with its participant set and fills in the
// generated id and timestamps.
func (r *PgxSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sessions (name, date, teacher_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		session.Name, session.Date, session.TeacherID, session.Description,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertParticipants(ctx, tx, session.ID, session.Users); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update rewrites the session row and replaces its participant set in one
// transaction, so no partial write is ever observable. Returns false when no
// such session existed.
func (r *PgxSessionRepository) Update(ctx context.Context, session *domain.Session) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE sessions
		SET name = $2, date = $3, teacher_id = $4, description = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err = tx.QueryRow(ctx, query,
		session.ID, session.Name, session.Date, session.TeacherID, session.Description,
	).Scan(&session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM participate WHERE session_id = $1`, session.ID); err != nil {
		return false, err
	}
	if err := insertParticipants(ctx, tx, session.ID, session.Users); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the session; participant rows go with it via the FK cascade.
// Returns false when no such session existed.
func (r *PgxSessionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func insertParticipants(ctx context.Context, tx pgx.Tx, sessionID int64, userIDs []int64) error {
	for _, userID := range userIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO participate (session_id, user_id) VALUES ($1, $2)`,
			sessionID, userID,
		)
		if err != nil {
			return fmt.Errorf("insert participant %d: %w", userID, err)
		}
	}
	return nil
}
