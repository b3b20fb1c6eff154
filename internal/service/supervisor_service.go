package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type supervisorRepository interface {
	FindByID(ctx context.Context, id string) (*models.Supervisor, error)
}

type rosterRepository interface {
	ListBySupervisor(ctx context.Context, supervisorID string) ([]models.Student, error)
}

// SupervisorService serves supervisor profiles and their derived rosters.
// Both reads sit behind the cache; assignment invalidates the same keys.
type SupervisorService struct {
	repo     supervisorRepository
	students rosterRepository
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewSupervisorService constructs a SupervisorService.
func NewSupervisorService(repo supervisorRepository, students rosterRepository, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *SupervisorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &SupervisorService{repo: repo, students: students, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Profile returns the supervisor record by identifier.
func (s *SupervisorService) Profile(ctx context.Context, supervisorID string) (*models.Supervisor, error) {
	keys := SupervisorCacheKeys(supervisorID)
	if s.cache.Enabled() {
		var cached models.Supervisor
		if hit, _ := s.cache.Get(ctx, keys[0], &cached); hit {
			return &cached, nil
		}
	}

	supervisor, err := s.repo.FindByID(ctx, supervisorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch supervisor")
	}

	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, keys[0], supervisor, s.cacheTTL)
	}
	return supervisor, nil
}

// Roster returns the students currently assigned to the supervisor.
func (s *SupervisorService) Roster(ctx context.Context, supervisorID string) ([]models.Student, error) {
	if _, err := s.Profile(ctx, supervisorID); err != nil {
		return nil, err
	}

	keys := SupervisorCacheKeys(supervisorID)
	if s.cache.Enabled() {
		var cached []models.Student
		if hit, _ := s.cache.Get(ctx, keys[1], &cached); hit {
			return cached, nil
		}
	}

	roster, err := s.students.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to list assigned students")
	}

	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, keys[1], roster, s.cacheTTL)
	}
	return roster, nil
}
