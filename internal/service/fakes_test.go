package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/liceo-connect/liceo-api/internal/models"
)

var fixedNow = time.Date(2024, 3, 11, 8, 30, 15, 123456000, time.Local)

func fixedClock() time.Time { return fixedNow }

type fakeUserRepo struct {
	users     []models.User
	findErr   error
	createErr error
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.users {
		if f.users[i].Email == email && f.users[i].Password == password {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

type fakeAttendanceRepo struct {
	rows      []models.Attendance
	err       error
	listHits  int
	afterList func()
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *models.Attendance) error {
	if f.err != nil {
		return f.err
	}
	a.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAttendanceRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.Attendance, error) {
	f.listHits++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Attendance{}
	for _, r := range f.rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	if f.afterList != nil {
		hook := f.afterList
		f.afterList = nil
		hook()
	}
	return out, nil
}

type fakeGradeRepo struct {
	grades   []models.Grade
	err      error
	listHits int
}

func (f *fakeGradeRepo) Create(ctx context.Context, g *models.Grade) error {
	if f.err != nil {
		return f.err
	}
	g.ID = int64(len(f.grades) + 1)
	f.grades = append(f.grades, *g)
	return nil
}

func (f *fakeGradeRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	f.listHits++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Grade{}
	for _, g := range f.grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []models.Message
	err      error
	listHits int
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *models.Message) error {
	if f.err != nil {
		return f.err
	}
	m.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeMessageRepo) ListForUser(ctx context.Context, userID int64) ([]models.Message, error) {
	f.listHits++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Message{}
	for _, m := range f.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool          { return &v }
func strPtr(v string) *string       { return &v }
