package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/internal/models"
	appErrors "github.com/liceo-connect/liceo-api/pkg/errors"
	"github.com/liceo-connect/liceo-api/pkg/export"
)

const msgGradeSaved = "Calificación guardada"

type gradeRepository interface {
	Create(ctx context.Context, g *models.Grade) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
}

// GradeService records grades, lists them and renders grade sheets.
type GradeService struct {
	repo      gradeRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs the service. cache and metrics may be nil.
func NewGradeService(repo gradeRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &GradeService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// Add stores a grade as given; the score range is not checked.
func (s *GradeService) Add(ctx context.Context, req dto.AddGradeRequest) (*dto.MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "grade")
	}

	grade := &models.Grade{StudentID: *req.StudentID, Subject: *req.Subject, Score: *req.Score}
	if err := s.repo.Create(ctx, grade); err != nil {
		return nil, internalError(err, "failed to save grade")
	}

	s.cache.Invalidate(ctx, gradesKey(grade.StudentID))
	s.metrics.RecordCreated("calificacion")
	return &dto.MessageResponse{Message: msgGradeSaved}, nil
}

// List returns every grade for studentID in the order they were written.
func (s *GradeService) List(ctx context.Context, studentID int64) ([]dto.GradeItem, error) {
	key := gradesKey(studentID)
	var cached []dto.GradeItem
	slot, hit := s.cache.Get(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	grades, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list grades")
	}

	items := make([]dto.GradeItem, 0, len(grades))
	for _, g := range grades {
		items = append(items, dto.GradeItem{Subject: g.Subject, Score: g.Score})
	}
	s.cache.Set(ctx, slot, items)
	return items, nil
}

// Export renders the student's grades as CSV (default) or PDF.
func (s *GradeService) Export(ctx context.Context, studentID int64, format string) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = dto.ExportCSV
	}
	if format != dto.ExportCSV && format != dto.ExportPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	items, err := s.List(ctx, studentID)
	if err != nil {
		return nil, err
	}

	sheet := export.Sheet{
		Title:   fmt.Sprintf("Calificaciones estudiante %d", studentID),
		Columns: []string{"materia", "nota"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, item := range items {
		sheet.Rows = append(sheet.Rows, []string{item.Subject, strconv.FormatFloat(item.Score, 'f', -1, 64)})
	}

	file := &dto.ExportFile{Filename: fmt.Sprintf("calificaciones_%d.%s", studentID, format)}
	switch format {
	case dto.ExportPDF:
		file.ContentType = "application/pdf"
		file.Content, err = export.PDF(sheet)
	default:
		file.ContentType = "text/csv; charset=utf-8"
		file.Content, err = export.CSV(sheet)
	}
	if err != nil {
		return nil, internalError(err, "failed to render grade sheet")
	}
	return file, nil
}
