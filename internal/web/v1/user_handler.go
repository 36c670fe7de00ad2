package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/internal/logger"
	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
	"github.com/zenstudio/booking-service/middleware"
)

// GetUser handles GET /user/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("user_id", id).Msg("Get user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, domain.NewUserResponse(user))
}

// DeleteUser handles DELETE /user/:id. Only the account owner or an admin may
// delete; a denial is 403, never 404 or 400.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	principal := middleware.GetPrincipal(c)

	if err := h.users.Delete(ctx, principal, id); err != nil {
		log.Warn().Err(err).Int64("user_id", id).Msg("Delete user failed")

		switch {
		case errors.Is(err, logicv1.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, logicv1.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	log.Info().Int64("user_id", id).Msg("User deleted")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
