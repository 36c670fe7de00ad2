package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/internal/logger"
)

// ListTeachers handles GET /teacher.
func (h *Handler) ListTeachers(c *gin.Context) {
	ctx := c.Request.Context()

	teachers, err := h.teachers.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("List teachers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]domain.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, domain.NewTeacherResponse(&teachers[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetTeacher handles GET /teacher/:id.
func (h *Handler) GetTeacher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	teacher, err := h.teachers.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("teacher_id", id).Msg("Get teacher failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if teacher == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}

	c.JSON(http.StatusOK, domain.NewTeacherResponse(teacher))
}
