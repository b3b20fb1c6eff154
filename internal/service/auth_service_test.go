package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type authStudentMock struct {
	byUsername map[string]*models.Student
	byMatric   map[string]*models.Student
	created    []*models.Student
	createErr  error
}

func (m *authStudentMock) FindByUsername(ctx context.Context, username string) (*models.Student, error) {
	if s, ok := m.byUsername[username]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *authStudentMock) FindByMatric(ctx context.Context, matric string) (*models.Student, error) {
	if s, ok := m.byMatric[matric]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *authStudentMock) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, student)
	if m.byUsername == nil {
		m.byUsername = map[string]*models.Student{}
	}
	m.byUsername[student.Username] = student
	return nil
}

type authSupervisorMock struct {
	byUsername map[string]*models.Supervisor
	created    []*models.Supervisor
}

func (m *authSupervisorMock) FindByUsername(ctx context.Context, username string) (*models.Supervisor, error) {
	if s, ok := m.byUsername[username]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *authSupervisorMock) Create(ctx context.Context, supervisor *models.Supervisor) error {
	m.created = append(m.created, supervisor)
	if m.byUsername == nil {
		m.byUsername = map[string]*models.Supervisor{}
	}
	m.byUsername[supervisor.Username] = supervisor
	return nil
}

func newAuthService(students *authStudentMock, supervisors *authSupervisorMock) *AuthService {
	return NewAuthService(students, supervisors, nil, nil, AuthConfig{Secret: "test-secret", Issuer: "test"})
}

func registerReq() dto.RegisterStudentRequest {
	return dto.RegisterStudentRequest{
		Username:     "jdoe",
		FirstName:    "John",
		LastName:     "Doe",
		School:       "FUTA",
		MatricNumber: "CSC/2020/001",
		Password:     "secret",
	}
}

func TestRegisterStudent(t *testing.T) {
	students := &authStudentMock{}
	svc := newAuthService(students, &authSupervisorMock{})

	student, err := svc.RegisterStudent(context.Background(), registerReq())
	require.NoError(t, err)
	assert.Equal(t, "jdoe", student.Username)
	require.Len(t, students.created, 1)
	assert.NotEqual(t, "secret", students.created[0].PasswordHash)
}

func TestRegisterStudentDuplicate(t *testing.T) {
	students := &authStudentMock{byUsername: map[string]*models.Student{
		"jdoe": {ID: "student-1", Username: "jdoe"},
	}}
	svc := newAuthService(students, &authSupervisorMock{})

	_, err := svc.RegisterStudent(context.Background(), registerReq())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErrors.FromError(err).Code)
	assert.Empty(t, students.created)
}

func TestLoginStudentByMatric(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	students := &authStudentMock{byMatric: map[string]*models.Student{
		"CSC/2020/001": {ID: "student-1", Username: "jdoe", MatricNumber: "CSC/2020/001", PasswordHash: string(hash)},
	}}
	svc := newAuthService(students, &authSupervisorMock{})

	student, token, err := svc.LoginStudent(context.Background(), dto.LoginRequest{Username: "CSC/2020/001", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestLoginStudentWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	students := &authStudentMock{byMatric: map[string]*models.Student{
		"CSC/2020/001": {ID: "student-1", MatricNumber: "CSC/2020/001", PasswordHash: string(hash)},
	}}
	svc := newAuthService(students, &authSupervisorMock{})

	_, token, err := svc.LoginStudent(context.Background(), dto.LoginRequest{Username: "CSC/2020/001", Password: "wrong"})
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "invalid credentials", appErrors.FromError(err).Message)
}

func TestLoginStudentUnknownIdentity(t *testing.T) {
	svc := newAuthService(&authStudentMock{}, &authSupervisorMock{})

	_, _, err := svc.LoginStudent(context.Background(), dto.LoginRequest{Username: "ghost", Password: "secret"})
	require.Error(t, err)
	// The rejection must read the same as a wrong password.
	assert.Equal(t, "invalid credentials", appErrors.FromError(err).Message)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	students := &authStudentMock{byMatric: map[string]*models.Student{
		"CSC/2020/001": {ID: "student-1", MatricNumber: "CSC/2020/001", PasswordHash: string(hash)},
	}}
	svc := newAuthService(students, &authSupervisorMock{})

	_, token, err := svc.LoginStudent(context.Background(), dto.LoginRequest{Username: "CSC/2020/001", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}
