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

const placementColumns = `id, student_id, company_name, company_address, state, lga, company_email, company_phone_number, resumption_date, termination_date, assigned_department, job_desc, created_at, updated_at`

// PlacementRepository manages persistence for company placement details.
type PlacementRepository struct {
	db *sqlx.DB
}

// NewPlacementRepository constructs a PlacementRepository.
func NewPlacementRepository(db *sqlx.DB) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// FindByStudent fetches the placement record keyed by student reference.
func (r *PlacementRepository) FindByStudent(ctx context.Context, studentID string) (*models.PlacementDetails, error) {
	query := fmt.Sprintf(`SELECT %s FROM placement_details WHERE student_id = $1 LIMIT 1`, placementColumns)
	var details models.PlacementDetails
	if err := r.db.GetContext(ctx, &details, query, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find placement by student: %w", err)
	}
	return &details, nil
}

// Upsert inserts or fully replaces the placement record for a student in a
// single statement. The unique constraint on student_id makes concurrent
// submissions converge on one row instead of racing to duplicate inserts.
func (r *PlacementRepository) Upsert(ctx context.Context, details *models.PlacementDetails) (*models.PlacementDetails, error) {
	if details.ID == "" {
		details.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if details.CreatedAt.IsZero() {
		details.CreatedAt = now
	}
	details.UpdatedAt = now

	query := fmt.Sprintf(`INSERT INTO placement_details (id, student_id, company_name, company_address, state, lga, company_email, company_phone_number, resumption_date, termination_date, assigned_department, job_desc, created_at, updated_at)
VALUES (:id, :student_id, :company_name, :company_address, :state, :lga, :company_email, :company_phone_number, :resumption_date, :termination_date, :assigned_department, :job_desc, :created_at, :updated_at)
ON CONFLICT (student_id) DO UPDATE SET
	company_name = EXCLUDED.company_name,
	company_address = EXCLUDED.company_address,
	state = EXCLUDED.state,
	lga = EXCLUDED.lga,
	company_email = EXCLUDED.company_email,
	company_phone_number = EXCLUDED.company_phone_number,
	resumption_date = EXCLUDED.resumption_date,
	termination_date = EXCLUDED.termination_date,
	assigned_department = EXCLUDED.assigned_department,
	job_desc = EXCLUDED.job_desc,
	updated_at = EXCLUDED.updated_at
RETURNING %s`, placementColumns)

	rows, err := r.db.NamedQueryContext(ctx, query, details)
	if err != nil {
		return nil, fmt.Errorf("upsert placement: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		return nil, fmt.Errorf("upsert placement: no row returned")
	}
	var stored models.PlacementDetails
	if err := rows.StructScan(&stored); err != nil {
		return nil, fmt.Errorf("scan placement: %w", err)
	}
	return &stored, nil
}
