package v1_test

import (
	"context"
	"errors"
	"time"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// In-memory repository fakes. Gets return copies so service-side mutation is
// only visible after an explicit Update, like a real store.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) add(u domain.User) *domain.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeSessionRepo struct {
	nextID   int64
	sessions map[int64]*domain.Session
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{nextID: 1, sessions: make(map[int64]*domain.Session)}
}

func (r *fakeSessionRepo) add(s domain.Session) *domain.Session {
	if s.ID == 0 {
		s.ID = r.nextID
	}
	if s.ID >= r.nextID {
		r.nextID = s.ID + 1
	}
	r.sessions[s.ID] = &s
	return &s
}

func copySession(s *domain.Session) *domain.Session {
	cp := *s
	cp.Users = append([]int64(nil), s.Users...)
	return &cp
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return copySession(s), nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context) ([]domain.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, *copySession(s))
	}
	return out, nil
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	if r.err != nil {
		return r.err
	}
	session.ID = r.nextID
	r.nextID++
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	r.sessions[session.ID] = copySession(session)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *domain.Session) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.sessions[session.ID]; !ok {
		return false, nil
	}
	r.sessions[session.ID] = copySession(session)
	return true, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

type fakeTeacherRepo struct {
	teachers map[int64]*domain.Teacher
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{teachers: make(map[int64]*domain.Teacher)}
}

func (r *fakeTeacherRepo) add(t domain.Teacher) *domain.Teacher {
	r.teachers[t.ID] = &t
	return &t
}

func (r *fakeTeacherRepo) GetByID(_ context.Context, id int64) (*domain.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTeacherRepo) FindAll(_ context.Context) ([]domain.Teacher, error) {
	out := make([]domain.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, *t)
	}
	return out, nil
}

var errStore = errors.New("store unavailable")
