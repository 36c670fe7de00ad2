package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

// principalKey is the gin context key the authenticated principal is stored
// under.
const principalKey = "principal"

// IdentityResolver validates a bearer token and resolves the authenticated
// principal behind it. Implemented by the auth service.
type IdentityResolver interface {
	Identify(ctx context.Context, token string) (*domain.Principal, error)
}

// AuthRequired rejects requests without a valid bearer token and stores the
// resolved principal in the gin context for handlers to pick up with
// GetPrincipal. Every failure answers 401 with the same body; the underlying
// error kind (bad token vs. vanished account) is preserved in the log line.
func AuthRequired(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		principal, err := resolver.Identify(c.Request.Context(), token)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("Authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by AuthRequired, or nil when the
// request did not pass through it.
func GetPrincipal(c *gin.Context) *domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := v.(*domain.Principal)
	if !ok {
		return nil
	}
	return principal
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
