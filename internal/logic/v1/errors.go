// Package v1 holds the booking business logic for API version 1:
// authentication, token handling, session membership, and the owner-or-admin
// authorization rule.
//
// Error Handling:
// This package defines sentinel errors that represent the request-scoped
// failure modes of the API. They are wrapped with context using
// fmt.Errorf("%w") when returned from business logic methods, and handlers
// map them to HTTP statuses with errors.Is switches. None of them is ever
// retried by this layer.
package v1

import "errors"

// Sentinel errors for booking operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrInvalidCredentials indicates the provided password does not match.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates the login email does not exist.
	// HTTP Status: 401 Unauthorized on login (don't reveal user existence),
	// 404 Not Found elsewhere.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the registration email is already in use.
	// HTTP Status: 409 Conflict
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidToken indicates a malformed, badly signed, or expired token.
	// The three causes deliberately collapse into one error so the response
	// discloses nothing about which check failed.
	// HTTP Status: 401 Unauthorized
	ErrInvalidToken = errors.New("invalid token")

	// ErrIdentityNotFound indicates a well-formed, current token whose account
	// no longer exists. Distinct from ErrInvalidToken so the two show up
	// separately in logs, even though both answer 401.
	// HTTP Status: 401 Unauthorized
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrNotFound indicates a referenced session or teacher does not exist.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyParticipating indicates the user is already on the session's
	// participant list. A repeated subscribe is a client error, not an
	// idempotent success.
	// HTTP Status: 400 Bad Request
	ErrAlreadyParticipating = errors.New("already participating")

	// ErrNotParticipating indicates the user is not on the session's
	// participant list.
	// HTTP Status: 400 Bad Request
	ErrNotParticipating = errors.New("not participating")

	// ErrInvalidSession indicates a nil or field-invalid session on create or
	// update.
	// HTTP Status: 400 Bad Request
	ErrInvalidSession = errors.New("invalid session")

	// ErrForbidden indicates an authenticated principal acting on a user
	// resource that is neither their own nor reachable with the admin flag.
	// HTTP Status: 403 Forbidden
	ErrForbidden = errors.New("forbidden")
)
