package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/internal/logger"
	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
	"github.com/zenstudio/booking-service/middleware"
)

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		log.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Msg("Login failed")

		switch {
		case errors.Is(err, logicv1.ErrInvalidCredentials),
			// Don't reveal whether the email exists.
			errors.Is(err, logicv1.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	log.Info().Int64("user_id", response.ID).Msg("Login successful")
	c.JSON(http.StatusOK, response)
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		log.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.auth.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")

		switch {
		case errors.Is(err, logicv1.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already taken"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	log.Info().Int64("user_id", response.ID).Msg("Registration successful")
	c.JSON(http.StatusCreated, response)
}

// GetMe handles GET /auth/me: the principal the middleware resolved from the
// bearer token.
func (h *Handler) GetMe(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        principal.ID,
		"email":     principal.Email,
		"lastName":  principal.LastName,
		"firstName": principal.FirstName,
		"admin":     principal.Admin,
	})
}
