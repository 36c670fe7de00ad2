package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/middleware"
)

type fakeResolver struct {
	principal *domain.Principal
	err       error
	seenToken string
}

func (r *fakeResolver) Identify(_ context.Context, token string) (*domain.Principal, error) {
	r.seenToken = token
	if r.err != nil {
		return nil, r.err
	}
	return r.principal, nil
}

func newAuthRouter(resolver *fakeResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthRequired(resolver), func(c *gin.Context) {
		principal := middleware.GetPrincipal(c)
		if principal == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": principal.Email})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Run("passes a valid bearer token through", func(t *testing.T) {
		resolver := &fakeResolver{principal: &domain.Principal{ID: 1, Email: "ana@studio.dev"}}
		r := newAuthRouter(resolver)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok-123", resolver.seenToken)
		assert.Contains(t, w.Body.String(), "ana@studio.dev")
	})

	t.Run("missing header", func(t *testing.T) {
		r := newAuthRouter(&fakeResolver{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		r := newAuthRouter(&fakeResolver{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("resolver rejection", func(t *testing.T) {
		r := newAuthRouter(&fakeResolver{err: errors.New("invalid token")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetPrincipalOutsideMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, middleware.GetPrincipal(c))
}
