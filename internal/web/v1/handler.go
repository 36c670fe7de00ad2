// Package v1 exposes the booking API over HTTP. Handlers bind input, call
// the logic layer, and map its sentinel errors to statuses; no business rule
// lives here.
package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
	"github.com/zenstudio/booking-service/middleware"
)

// Handler groups the HTTP handlers for API v1.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth     *logicv1.AuthService
	sessions *logicv1.SessionService
	teachers *logicv1.TeacherService
	users    *logicv1.UserService
}

// NewHandler creates a new Handler with the given services.
func NewHandler(
	auth *logicv1.AuthService,
	sessions *logicv1.SessionService,
	teachers *logicv1.TeacherService,
	users *logicv1.UserService,
) *Handler {
	return &Handler{auth: auth, sessions: sessions, teachers: teachers, users: users}
}

// RegisterRoutes registers all API v1 routes on the given router group.
// Everything except login and register sits behind the bearer-token
// middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/register", h.Register)

	authed := rg.Group("", middleware.AuthRequired(h.auth))
	authed.GET("/auth/me", h.GetMe)

	authed.GET("/session", h.ListSessions)
	authed.GET("/session/:id", h.GetSession)
	authed.POST("/session", h.CreateSession)
	authed.PUT("/session/:id", h.UpdateSession)
	authed.DELETE("/session/:id", h.DeleteSession)
	authed.POST("/session/:id/participate/:userId", h.Participate)
	authed.DELETE("/session/:id/participate/:userId", h.NoLongerParticipate)

	authed.GET("/teacher", h.ListTeachers)
	authed.GET("/teacher/:id", h.GetTeacher)

	authed.GET("/user/:id", h.GetUser)
	authed.DELETE("/user/:id", h.DeleteUser)
}

// pathID parses a numeric path parameter. A malformed id answers 400 before
// any service call; the second return reports whether to continue.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identifier"})
		return 0, false
	}
	return id, true
}
