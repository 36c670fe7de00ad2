package v1

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded token payload. The subject is the user's login email;
// everything else about the principal is resolved from the user store.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless HS256 bearer tokens. The
// signing key is process-wide configuration: loaded once at startup, passed
// here at construction, never mutated.
type TokenService struct {
	signingKey []byte
	expiration time.Duration
	issuer     string
}

// NewTokenService creates a TokenService with the given immutable signing key
// and token lifetime.
func NewTokenService(signingKey []byte, expiration time.Duration, issuer string) *TokenService {
	return &TokenService{
		signingKey: signingKey,
		expiration: expiration,
		issuer:     issuer,
	}
}

// Issue produces a signed token whose subject is the given login email.
func (ts *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the claims. Malformed
// tokens, bad signatures, and expired tokens all collapse into
// ErrInvalidToken: the caller answers 401 either way and the response gives
// nothing away about which check failed.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("map claims: %w", ErrInvalidToken)
	}
	return claims, nil
}
