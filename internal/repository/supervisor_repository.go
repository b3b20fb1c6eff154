package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/siwes-hub/placement-api/internal/models"
)

const supervisorColumns = `id, username, first_name, last_name, middle_name, school, region, gender, phone_number, password_hash, created_at, updated_at`

// SupervisorRepository provides database access for supervisor accounts.
type SupervisorRepository struct {
	db *sqlx.DB
}

// NewSupervisorRepository creates a new instance of SupervisorRepository.
func NewSupervisorRepository(db *sqlx.DB) *SupervisorRepository {
	return &SupervisorRepository{db: db}
}

// FindByUsername returns a supervisor by username.
func (r *SupervisorRepository) FindByUsername(ctx context.Context, username string) (*models.Supervisor, error) {
	query := fmt.Sprintf(`SELECT %s FROM supervisors WHERE username = $1 LIMIT 1`, supervisorColumns)
	var supervisor models.Supervisor
	if err := r.db.GetContext(ctx, &supervisor, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find supervisor by username: %w", err)
	}
	return &supervisor, nil
}

// FindByID returns a supervisor by identifier.
func (r *SupervisorRepository) FindByID(ctx context.Context, id string) (*models.Supervisor, error) {
	query := fmt.Sprintf(`SELECT %s FROM supervisors WHERE id = $1 LIMIT 1`, supervisorColumns)
	var supervisor models.Supervisor
	if err := r.db.GetContext(ctx, &supervisor, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find supervisor by id: %w", err)
	}
	return &supervisor, nil
}

// Create inserts a new supervisor account.
func (r *SupervisorRepository) Create(ctx context.Context, supervisor *models.Supervisor) error {
	if supervisor.ID == "" {
		supervisor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if supervisor.CreatedAt.IsZero() {
		supervisor.CreatedAt = now
	}
	supervisor.UpdatedAt = now

	const query = `INSERT INTO supervisors (id, username, first_name, last_name, middle_name, school, region, gender, phone_number, password_hash, created_at, updated_at) VALUES (:id, :username, :first_name, :last_name, :middle_name, :school, :region, :gender, :phone_number, :password_hash, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, supervisor); err != nil {
		return fmt.Errorf("create supervisor: %w", err)
	}
	return nil
}

// ListByRegionWithLoad returns every supervisor in the region together with
// their derived roster size, earliest registered first. The assignment engine
// picks the minimum from this list.
func (r *SupervisorRepository) ListByRegionWithLoad(ctx context.Context, region string) ([]models.SupervisorLoad, error) {
	const query = `SELECT s.id, s.username, s.first_name, s.last_name, s.middle_name, s.school, s.region, s.gender, s.phone_number, s.password_hash, s.created_at, s.updated_at, COUNT(st.id) AS roster_count
FROM supervisors s
LEFT JOIN students st ON st.supervisor_id = s.id
WHERE s.region = $1
GROUP BY s.id
ORDER BY s.created_at ASC`
	var loads []models.SupervisorLoad
	if err := r.db.SelectContext(ctx, &loads, query, region); err != nil {
		return nil, fmt.Errorf("list supervisors by region: %w", err)
	}
	return loads, nil
}
