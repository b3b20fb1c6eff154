package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type assignmentSupervisorRepository interface {
	ListByRegionWithLoad(ctx context.Context, region string) ([]models.SupervisorLoad, error)
}

type assignmentStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Assign(ctx context.Context, studentID, supervisorID, supervisorName string) error
}

// AssignmentResult reports the outcome of an assignment attempt. A missing
// supervisor in the region is a success-shaped outcome, not an error.
type AssignmentResult struct {
	Assigned       bool    `json:"assigned"`
	SupervisorID   string  `json:"supervisorId,omitempty"`
	SupervisorName string  `json:"supervisorName,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}

// AssignmentService places a student under the least-loaded supervisor in a
// region. Roster size is derived from students.supervisor_id, so stamping the
// student is the whole assignment: one row, one write, both sides consistent.
type AssignmentService struct {
	supervisors assignmentSupervisorRepository
	students    assignmentStudentRepository
	cache       *CacheService
	logger      *zap.Logger
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(supervisors assignmentSupervisorRepository, students assignmentStudentRepository, cache *CacheService, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{supervisors: supervisors, students: students, cache: cache, logger: logger}
}

// SupervisorCacheKeys returns the cache keys holding a supervisor's profile
// and roster payloads.
func SupervisorCacheKeys(supervisorID string) []string {
	return []string{
		fmt.Sprintf("supervisor:profile:%s", supervisorID),
		fmt.Sprintf("supervisor:roster:%s", supervisorID),
	}
}

// Assign picks the supervisor with the fewest assigned students in the given
// region and stamps the student with that supervisor's identity. Ties go to
// the earliest-registered supervisor. A student who already has a supervisor
// keeps it; re-uploading placement details must not reshuffle rosters.
func (s *AssignmentService) Assign(ctx context.Context, region, studentID string) (*AssignmentResult, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch student")
	}

	if student.SupervisorID != nil && *student.SupervisorID != "" {
		result := &AssignmentResult{Assigned: false, SupervisorID: *student.SupervisorID, Reason: "already assigned"}
		if student.SupervisorName != nil {
			result.SupervisorName = *student.SupervisorName
		}
		return result, nil
	}

	loads, err := s.supervisors.ListByRegionWithLoad(ctx, region)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to list supervisors")
	}
	if len(loads) == 0 {
		s.logger.Info("no supervisor available for region", zap.String("region", region), zap.String("student_id", studentID))
		return &AssignmentResult{Assigned: false, Reason: "no supervisor available"}, nil
	}

	selected := loads[0]
	for _, candidate := range loads[1:] {
		if candidate.RosterCount < selected.RosterCount {
			selected = candidate
		}
	}

	displayName := selected.DisplayName()
	if err := s.students.Assign(ctx, studentID, selected.ID, displayName); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to record assignment")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, SupervisorCacheKeys(selected.ID)...)
	}

	s.logger.Info("student assigned to supervisor",
		zap.String("student_id", studentID),
		zap.String("supervisor_id", selected.ID),
		zap.String("region", region),
		zap.Int("roster_count_before", selected.RosterCount),
	)

	return &AssignmentResult{Assigned: true, SupervisorID: selected.ID, SupervisorName: displayName}, nil
}
