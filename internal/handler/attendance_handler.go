package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/pkg/response"
)

type attendanceService interface {
	Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*dto.MessageResponse, error)
	List(ctx context.Context, studentID int64) ([]dto.AttendanceItem, error)
}

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance attendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(svc attendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: svc}
}

// Mark godoc
// @Summary Mark attendance
// @Tags Asistencia
// @Accept json
// @Produce json
// @Param payload body dto.MarkAttendanceRequest true "Attendance payload"
// @Success 200 {object} dto.MessageResponse
// @Router /asistencia [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	res, err := h.attendance.Mark(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// List godoc
// @Summary List attendance for a student
// @Tags Asistencia
// @Produce json
// @Param estudiante_id path int true "Student id"
// @Success 200 {array} dto.AttendanceItem
// @Router /asistencia/{estudiante_id} [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	studentID, err := idParam(c, "estudiante_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.attendance.List(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}
