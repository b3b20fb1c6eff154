package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type studentRepoMock struct {
	student    *models.Student
	findErr    error
	updateErr  error
	updates    int
	hitsCalls  int
	lastDelta  int
	hitsResult *models.Student
}

func (m *studentRepoMock) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.student, nil
}

func (m *studentRepoMock) FindByUsername(ctx context.Context, username string) (*models.Student, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.student, nil
}

func (m *studentRepoMock) UpdateProfile(ctx context.Context, student *models.Student) error {
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.student = student
	return nil
}

func (m *studentRepoMock) DecrementHits(ctx context.Context, username string, delta int) (*models.Student, error) {
	m.hitsCalls++
	m.lastDelta = delta
	if m.hitsResult == nil {
		return nil, sql.ErrNoRows
	}
	return m.hitsResult, nil
}

type reauthMock struct {
	student *models.Student
	err     error
	calls   int
}

func (m *reauthMock) VerifyStudentPassword(ctx context.Context, username, password string) (*models.Student, error) {
	m.calls++
	return m.student, m.err
}

func TestStudentProfileNotFound(t *testing.T) {
	svc := NewStudentService(&studentRepoMock{findErr: sql.ErrNoRows}, &reauthMock{}, nil, nil)

	_, err := svc.Profile(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "Not found", appErrors.FromError(err).Message)
}

func TestStudentUpdateProfileReauthenticates(t *testing.T) {
	existing := &models.Student{ID: "student-1", Username: "jdoe", FirstName: "John", School: "FUTA"}
	repo := &studentRepoMock{student: existing}
	reauth := &reauthMock{student: existing}
	svc := NewStudentService(repo, reauth, nil, nil)

	updated, err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{
		Username: "jdoe",
		Password: "secret",
		Level:    "400",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, reauth.calls)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, "400", updated.Level)
	// Fields absent from the request keep their stored value.
	assert.Equal(t, "John", updated.FirstName)
	assert.Equal(t, "FUTA", updated.School)
}

func TestStudentUpdateProfileRejectsBadPassword(t *testing.T) {
	repo := &studentRepoMock{}
	reauth := &reauthMock{err: appErrors.Clone(appErrors.ErrAuth, "invalid credentials")}
	svc := NewStudentService(repo, reauth, nil, nil)

	_, err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{Username: "jdoe", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAuth.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.updates)
}

func TestStudentDecrementHitsDelta(t *testing.T) {
	repo := &studentRepoMock{hitsResult: &models.Student{Username: "jdoe", HitsNum: 7}}
	svc := NewStudentService(repo, &reauthMock{}, nil, nil)

	student, err := svc.DecrementHits(context.Background(), dto.DecrementHitsRequest{Username: "jdoe"})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastDelta)
	assert.Equal(t, 7, student.HitsNum)
}

func TestStudentDecrementHitsMissingUser(t *testing.T) {
	svc := NewStudentService(&studentRepoMock{}, &reauthMock{}, nil, nil)

	_, err := svc.DecrementHits(context.Background(), dto.DecrementHitsRequest{Username: "ghost"})
	require.Error(t, err)
	assert.Equal(t, "Not found", appErrors.FromError(err).Message)
}
