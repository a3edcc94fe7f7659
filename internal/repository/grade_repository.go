package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/liceo-connect/liceo-api/internal/models"
)

// GradeRepository persists calificacion rows.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs the repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// Create inserts a grade and sets its generated ID.
func (r *GradeRepository) Create(ctx context.Context, g *models.Grade) error {
	query := r.db.Rebind(`INSERT INTO calificacion (estudiante_id, materia, nota) VALUES (?, ?, ?) RETURNING id`)
	if err := r.db.GetContext(ctx, &g.ID, query, g.StudentID, g.Subject, g.Score); err != nil {
		return fmt.Errorf("create grade: %w", err)
	}
	return nil
}

// ListByStudent returns every grade for studentID in insertion order.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	query := r.db.Rebind(`SELECT id, estudiante_id, materia, nota FROM calificacion WHERE estudiante_id = ? ORDER BY id`)
	grades := []models.Grade{}
	if err := r.db.SelectContext(ctx, &grades, query, studentID); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}
