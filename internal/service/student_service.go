package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByUsername(ctx context.Context, username string) (*models.Student, error)
	UpdateProfile(ctx context.Context, student *models.Student) error
	DecrementHits(ctx context.Context, username string, delta int) (*models.Student, error)
}

type studentReauthenticator interface {
	VerifyStudentPassword(ctx context.Context, username, password string) (*models.Student, error)
}

// StudentService serves student profile reads and updates.
type StudentService struct {
	repo      studentRepository
	auth      studentReauthenticator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, auth studentReauthenticator, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, auth: auth, validator: validate, logger: logger}
}

// Profile returns the student record by identifier.
func (s *StudentService) Profile(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch student")
	}
	return student, nil
}

// UpdateProfile re-authenticates the student and replaces the submitted
// profile fields. Empty fields in the request keep their stored value.
func (s *StudentService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	student, err := s.auth.VerifyStudentPassword(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		student.FirstName = req.FirstName
	}
	if req.LastName != "" {
		student.LastName = req.LastName
	}
	if req.School != "" {
		student.School = req.School
	}
	if req.Level != "" {
		student.Level = req.Level
	}
	if req.Course != "" {
		student.Course = req.Course
	}
	if req.PhoneNumber != "" {
		student.PhoneNumber = req.PhoneNumber
	}

	if err := s.repo.UpdateProfile(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to update profile")
	}

	updated, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to load updated profile")
	}
	return updated, nil
}

// DecrementHits lowers the student's hits counter by three and returns the
// updated record. The endpoint predates the current dashboard and is kept for
// clients that still call it.
func (s *StudentService) DecrementHits(ctx context.Context, req dto.DecrementHitsRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	student, err := s.repo.DecrementHits(ctx, req.Username, 3)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to update hits")
	}
	return student, nil
}
