package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/liceo-connect/liceo-api/internal/models"
)

// AttendanceRepository persists asistencia rows.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create inserts a row and sets its generated ID.
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	query := r.db.Rebind(`INSERT INTO asistencia (estudiante_id, fecha, presente) VALUES (?, ?, ?) RETURNING id`)
	if err := r.db.GetContext(ctx, &a.ID, query, a.StudentID, a.Date, a.Present); err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

// ListByStudent returns every row for studentID in insertion order.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Attendance, error) {
	query := r.db.Rebind(`SELECT id, estudiante_id, fecha, presente FROM asistencia WHERE estudiante_id = ? ORDER BY id`)
	rows := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return rows, nil
}
