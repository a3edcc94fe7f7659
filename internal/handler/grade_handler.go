package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/pkg/response"
)

type gradeService interface {
	Add(ctx context.Context, req dto.AddGradeRequest) (*dto.MessageResponse, error)
	List(ctx context.Context, studentID int64) ([]dto.GradeItem, error)
	Export(ctx context.Context, studentID int64, format string) (*dto.ExportFile, error)
}

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades gradeService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(grades gradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// Add godoc
// @Summary Record a grade
// @Tags Calificaciones
// @Accept json
// @Produce json
// @Param payload body dto.AddGradeRequest true "Grade payload"
// @Success 200 {object} dto.MessageResponse
// @Router /calificaciones [post]
func (h *GradeHandler) Add(c *gin.Context) {
	var req dto.AddGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	res, err := h.grades.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// List godoc
// @Summary List grades for a student
// @Tags Calificaciones
// @Produce json
// @Param estudiante_id path int true "Student id"
// @Success 200 {array} dto.GradeItem
// @Router /calificaciones/{estudiante_id} [get]
func (h *GradeHandler) List(c *gin.Context) {
	studentID, err := idParam(c, "estudiante_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.grades.List(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Export godoc
// @Summary Download a student's grade sheet
// @Tags Calificaciones
// @Produce text/csv,application/pdf
// @Param estudiante_id path int true "Student id"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /calificaciones/{estudiante_id}/export [get]
func (h *GradeHandler) Export(c *gin.Context) {
	studentID, err := idParam(c, "estudiante_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.grades.Export(c.Request.Context(), studentID, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}
