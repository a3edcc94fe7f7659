package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/internal/models"
	"github.com/liceo-connect/liceo-api/pkg/database"
	appErrors "github.com/liceo-connect/liceo-api/pkg/errors"
)

const (
	msgRegistered = "Usuario registrado exitosamente"
	msgLoggedIn   = "Login exitoso"
)

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthService registers users and checks credentials. Passwords are stored
// and compared as plain text; there is no session or token.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &AuthService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Register creates a user unless the email is taken. The lookup handles the
// common case; the UNIQUE constraint catches concurrent registrations.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "registration")
	}

	if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
		return nil, appErrors.ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, internalError(err, "failed to look up user")
	}

	user := &models.User{Name: *req.Name, Role: *req.Role, Email: *req.Email, Password: *req.Password}
	if err := s.repo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.ErrDuplicateEmail
		}
		return nil, internalError(err, "failed to create user")
	}

	s.metrics.RecordCreated("usuario")
	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return &dto.MessageResponse{Message: msgRegistered}, nil
}

// Login returns the public fields of the user matching email and password.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "login")
	}

	user, err := s.repo.FindByCredentials(ctx, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, internalError(err, "failed to fetch user")
	}

	return &dto.LoginResponse{
		Message: msgLoggedIn,
		User:    dto.UserInfo{ID: user.ID, Name: user.Name, Role: user.Role},
	}, nil
}
