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

type placementRepository interface {
	FindByStudent(ctx context.Context, studentID string) (*models.PlacementDetails, error)
	Upsert(ctx context.Context, details *models.PlacementDetails) (*models.PlacementDetails, error)
}

type placementAssigner interface {
	Assign(ctx context.Context, region, studentID string) (*AssignmentResult, error)
}

// PlacementService upserts company placement details and triggers supervisor
// assignment once per upload, after the write lands, on both branches.
type PlacementService struct {
	repo       placementRepository
	assignment placementAssigner
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewPlacementService constructs a PlacementService.
func NewPlacementService(repo placementRepository, assignment placementAssigner, validate *validator.Validate, logger *zap.Logger) *PlacementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PlacementService{repo: repo, assignment: assignment, validator: validate, logger: logger}
}

// Upload stores or replaces the student's placement details, then runs the
// assignment engine against the placement's state.
func (s *PlacementService) Upload(ctx context.Context, req dto.UploadDetailsRequest) (*models.PlacementDetails, *AssignmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid placement payload")
	}

	details := &models.PlacementDetails{
		StudentID:          req.StudentID,
		CompanyName:        req.CompanyName,
		CompanyAddress:     req.CompanyAddress,
		State:              req.State,
		Lga:                req.Lga,
		CompanyEmail:       req.CompanyEmail,
		CompanyPhoneNumber: req.CompanyPhoneNumber,
		ResumptionDate:     req.ResumptionDate,
		TerminationDate:    req.TerminationDate,
		AssignedDepartment: req.AssignedDepartment,
		JobDesc:            req.JobDesc,
	}

	stored, err := s.repo.Upsert(ctx, details)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to store placement details")
	}

	assignment, err := s.assignment.Assign(ctx, req.State, req.StudentID)
	if err != nil {
		// The placement write already landed; surface the assignment
		// failure with the stored record so the caller can retry.
		return stored, nil, err
	}

	return stored, assignment, nil
}

// Get returns the placement details for a student.
func (s *PlacementService) Get(ctx context.Context, studentID string) (*models.PlacementDetails, error) {
	details, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch placement details")
	}
	return details, nil
}
