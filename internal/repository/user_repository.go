package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/liceo-connect/liceo-api/internal/models"
)

const userColumns = `id, nombre, rol, email, password`

// UserRepository provides database access for the usuario table.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user registered with email. It returns
// sql.ErrNoRows unwrapped when there is none.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM usuario WHERE email = ? LIMIT 1`)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByCredentials returns the user whose email and password both match
// exactly, or sql.ErrNoRows.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM usuario WHERE email = ? AND password = ? LIMIT 1`)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email, password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return &user, nil
}

// Create inserts user and sets its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := r.db.Rebind(`INSERT INTO usuario (nombre, rol, email, password) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.GetContext(ctx, &user.ID, query, user.Name, user.Role, user.Email, user.Password); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
