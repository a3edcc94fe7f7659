package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liceo-connect/liceo-api/internal/models"
)

var userRowColumns = []string{"id", "nombre", "rol", "email", "password"}

func TestFindByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userRowColumns).AddRow(1, "Ana", models.RoleStudent, "ana@x.com", "pw1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, rol, email, password FROM usuario WHERE email = $1 LIMIT 1")).
		WithArgs("ana@x.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("FROM usuario WHERE email").WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCredentials(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userRowColumns).AddRow(3, "Ana", models.RoleStudent, "ana@x.com", "pw1")
	mock.ExpectQuery(regexp.QuoteMeta("FROM usuario WHERE email = $1 AND password = $2 LIMIT 1")).
		WithArgs("ana@x.com", "pw1").
		WillReturnRows(rows)

	user, err := repo.FindByCredentials(context.Background(), "ana@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCredentialsDriverError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("FROM usuario").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByCredentials(context.Background(), "ana@x.com", "pw1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
	assert.Contains(t, err.Error(), "find user by credentials")
}

func TestCreateUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuario (nombre, rol, email, password) VALUES ($1, $2, $3, $4) RETURNING id")).
		WithArgs("Ana", models.RoleStudent, "ana@x.com", "pw1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user := &models.User{Name: "Ana", Role: models.RoleStudent, Email: "ana@x.com", Password: "pw1"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
