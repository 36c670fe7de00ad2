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

// ListSessions handles GET /session.
func (h *Handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sessions, err := h.sessions.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("List sessions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]domain.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, domain.NewSessionResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetSession handles GET /session/:id.
func (h *Handler) GetSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	session, err := h.sessions.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("session_id", id).Msg("Get session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, domain.NewSessionResponse(session))
}

// CreateSession handles POST /session.
func (h *Handler) CreateSession(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		log.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.Create(ctx, sessionFromRequest(&req))
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("Create session failed")
		respondSessionError(c, err)
		return
	}

	log.Info().Int64("session_id", session.ID).Msg("Session created")
	c.JSON(http.StatusCreated, domain.NewSessionResponse(session))
}

// UpdateSession handles PUT /session/:id: a full-field replacement.
func (h *Handler) UpdateSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	var req domain.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.Update(ctx, id, sessionFromRequest(&req))
	if err != nil {
		log.Error().Err(err).Int64("session_id", id).Msg("Update session failed")
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.NewSessionResponse(session))
}

// DeleteSession handles DELETE /session/:id.
func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if err := h.sessions.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("session_id", id).Msg("Delete session failed")
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// Participate handles POST /session/:id/participate/:userId.
func (h *Handler) Participate(c *gin.Context) {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if err := h.sessions.Participate(ctx, sessionID, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("session_id", sessionID).
			Int64("user_id", userID).
			Msg("Participate failed")
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participation recorded"})
}

// NoLongerParticipate handles DELETE /session/:id/participate/:userId.
func (h *Handler) NoLongerParticipate(c *gin.Context) {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if err := h.sessions.NoLongerParticipate(ctx, sessionID, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("session_id", sessionID).
			Int64("user_id", userID).
			Msg("Unsubscribe failed")
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participation removed"})
}

func sessionFromRequest(req *domain.SessionRequest) *domain.Session {
	return &domain.Session{
		Name:        req.Name,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
		Description: req.Description,
		Users:       req.Users,
	}
}

// respondSessionError maps the logic layer's sentinel errors onto statuses.
// NotFound, BadRequest, and validation failures stay distinct — they are not
// interchangeable even though all three reject the request.
func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logicv1.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, logicv1.ErrAlreadyParticipating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already participating"})
	case errors.Is(err, logicv1.ErrNotParticipating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not a participant"})
	case errors.Is(err, logicv1.ErrInvalidSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
