package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/internal/models"
)

const msgAttendanceSaved = "Asistencia registrada"

type attendanceRepository interface {
	Create(ctx context.Context, a *models.Attendance) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.Attendance, error)
}

// AttendanceService records and lists attendance marks.
type AttendanceService struct {
	repo      attendanceRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAttendanceService constructs the service. cache and metrics may be nil.
func NewAttendanceService(repo attendanceRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &AttendanceService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, now: time.Now}
}

// Mark stores one attendance row dated today. Present defaults to true.
func (s *AttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*dto.MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "attendance")
	}

	present := true
	if req.Present != nil {
		present = *req.Present
	}
	row := &models.Attendance{
		StudentID: *req.StudentID,
		Date:      s.now().Format(models.DateLayout),
		Present:   present,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, internalError(err, "failed to record attendance")
	}

	s.cache.Invalidate(ctx, attendanceKey(row.StudentID))
	s.metrics.RecordCreated("asistencia")
	return &dto.MessageResponse{Message: msgAttendanceSaved}, nil
}

// List returns every mark for studentID in the order they were written.
func (s *AttendanceService) List(ctx context.Context, studentID int64) ([]dto.AttendanceItem, error) {
	key := attendanceKey(studentID)
	var cached []dto.AttendanceItem
	slot, hit := s.cache.Get(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	rows, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list attendance")
	}

	items := make([]dto.AttendanceItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.AttendanceItem{Date: r.Date, Present: r.Present})
	}
	s.cache.Set(ctx, slot, items)
	return items, nil
}
