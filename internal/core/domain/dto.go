package domain

import "time"

// Request/response shapes for the JSON API. Field constraints mirror the
// column limits so invalid payloads are rejected before reaching the
// database.

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries a signup submission.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=50"`
	LastName  string `json:"lastName" binding:"required,max=20"`
	FirstName string `json:"firstName" binding:"required,max=20"`
	Password  string `json:"password" binding:"required,min=6,max=120"`
}

// AuthResponse is the login payload: a bearer token plus a principal summary.
type AuthResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// SessionRequest carries a session create or full-field update.
type SessionRequest struct {
	Name        string    `json:"name" binding:"required,max=50"`
	Date        time.Time `json:"date" binding:"required"`
	TeacherID   *int64    `json:"teacher_id"`
	Description string    `json:"description" binding:"max=2500"`
	Users       []int64   `json:"users"`
}

// SessionResponse is the outward session shape.
type SessionResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   *int64    `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserResponse is the outward user shape. The password hash never leaves the
// service.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeacherResponse is the outward teacher shape.
type TeacherResponse struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSessionResponse maps a session entity to its outward shape.
func NewSessionResponse(s *Session) SessionResponse {
	users := s.Users
	if users == nil {
		users = []int64{}
	}
	return SessionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date,
		TeacherID:   s.TeacherID,
		Description: s.Description,
		Users:       users,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewUserResponse maps a user entity to its outward shape.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewTeacherResponse maps a teacher entity to its outward shape.
func NewTeacherResponse(t *Teacher) TeacherResponse {
	return TeacherResponse{
		ID:        t.ID,
		LastName:  t.LastName,
		FirstName: t.FirstName,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
