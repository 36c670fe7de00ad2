package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/middleware"
)

// AuthService implements credential verification, token issuance, and
// token-derived identity resolution. It depends on repository interfaces
// (injected via constructor) and MUST NOT access the database or SQL directly.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(users domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and returns a bearer token together with a
// principal summary. Unknown email and wrong password are distinct sentinels
// internally; the handler answers 401 with the same body for both.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("email", req.Email),
	))
	defer span.End()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", req.Email, err)
	}
	if user == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", req.Email, ErrUserNotFound)
	}

	if !VerifyPassword(req.Password, user.Password) {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", req.Email, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("user.id", user.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &domain.AuthResponse{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	}, nil
}

// Register creates a new account and logs it straight in. A taken email is a
// conflict, not a validation failure.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("email", req.Email),
	))
	defer span.End()

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, fmt.Errorf("register %q: %w", req.Email, ErrEmailTaken)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:     req.Email,
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Password:  hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("user.id", user.ID),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")

	return &domain.AuthResponse{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	}, nil
}

// Identify validates a bearer token and resolves the authenticated principal
// from the user store. A token that validates but references a deleted
// account yields ErrIdentityNotFound — same 401 to the client, different
// error kind in the logs.
func (s *AuthService) Identify(ctx context.Context, token string) (*domain.Principal, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.identify", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	claims, err := s.tokens.Validate(token)
	if err != nil {
		span.SetAttributes(attribute.Bool("token.valid", false))
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", claims.Subject, err)
	}
	if user == nil {
		span.SetAttributes(attribute.Bool("identity.found", false))
		return nil, fmt.Errorf("resolve %q: %w", claims.Subject, ErrIdentityNotFound)
	}

	span.SetAttributes(
		attribute.Int64("user.id", user.ID),
		attribute.Bool("token.valid", true),
	)

	return &domain.Principal{
		ID:        user.ID,
		Email:     user.Email,
		LastName:  user.LastName,
		FirstName: user.FirstName,
		Admin:     user.Admin,
	}, nil
}
