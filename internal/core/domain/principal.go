package domain

// Principal is the authenticated identity derived from a validated token.
// It lives for one request and is never persisted.
type Principal struct {
	ID        int64
	Email     string
	LastName  string
	FirstName string
	Admin     bool
}
