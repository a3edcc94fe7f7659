package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liceo-connect/liceo-api/internal/models"
)

func TestAttendanceCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO asistencia (estudiante_id, fecha, presente) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs(int64(4), "2024-03-11", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	row := &models.Attendance{StudentID: 4, Date: "2024-03-11", Present: true}
	require.NoError(t, repo.Create(context.Background(), row))
	assert.Equal(t, int64(12), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceListByStudentOrdersByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "estudiante_id", "fecha", "presente"}).
		AddRow(1, 4, "2024-03-11", true).
		AddRow(5, 4, "2024-03-12", false)
	mock.ExpectQuery(regexp.QuoteMeta("FROM asistencia WHERE estudiante_id = $1 ORDER BY id")).
		WithArgs(int64(4)).
		WillReturnRows(rows)

	list, err := repo.ListByStudent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[1].Present)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceListEmptyIsNotNil(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("FROM asistencia").WillReturnRows(sqlmock.NewRows([]string{"id", "estudiante_id", "fecha", "presente"}))

	list, err := repo.ListByStudent(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGradeCreateAndList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO calificacion (estudiante_id, materia, nota) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs(int64(4), "Historia", 6.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, estudiante_id, materia, nota FROM calificacion WHERE estudiante_id = $1 ORDER BY id")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "estudiante_id", "materia", "nota"}).AddRow(2, 4, "Historia", 6.5))

	g := &models.Grade{StudentID: 4, Subject: "Historia", Score: 6.5}
	require.NoError(t, repo.Create(context.Background(), g))
	assert.Equal(t, int64(2), g.ID)

	list, err := repo.ListByStudent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 6.5, list[0].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeCreateError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectQuery("INSERT INTO calificacion").WillReturnError(errors.New("read-only transaction"))

	err := repo.Create(context.Background(), &models.Grade{StudentID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create grade")
}

func TestMessageCreateAndListForUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mensaje (emisor_id, receptor_id, contenido, fecha) VALUES ($1, $2, $3, $4) RETURNING id")).
		WithArgs(int64(1), int64(2), "hola", "2024-03-11 08:00:00.000000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM mensaje WHERE emisor_id = $1 OR receptor_id = $2 ORDER BY id")).
		WithArgs(int64(2), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "emisor_id", "receptor_id", "contenido", "fecha"}).
			AddRow(1, 1, 2, "hola", "2024-03-11 08:00:00.000000"))

	m := &models.Message{SenderID: 1, ReceiverID: 2, Content: "hola", SentAt: "2024-03-11 08:00:00.000000"}
	require.NoError(t, repo.Create(context.Background(), m))

	list, err := repo.ListForUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].SenderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
