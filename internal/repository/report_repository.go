package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/siwes-hub/placement-api/internal/models"
)

const reportColumns = `id, student_id, monday, tuesday, wednesday, thursday, friday, week, report_date, submitted_at, updated_at`

// ReportRepository manages persistence for weekly logbook reports.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Upsert inserts or replaces a week's report in a single statement keyed on
// (student, week, report date).
func (r *ReportRepository) Upsert(ctx context.Context, report *models.WeeklyReport) (*models.WeeklyReport, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if report.SubmittedAt.IsZero() {
		report.SubmittedAt = now
	}
	report.UpdatedAt = now

	query := fmt.Sprintf(`INSERT INTO weekly_reports (id, student_id, monday, tuesday, wednesday, thursday, friday, week, report_date, submitted_at, updated_at)
VALUES (:id, :student_id, :monday, :tuesday, :wednesday, :thursday, :friday, :week, :report_date, :submitted_at, :updated_at)
ON CONFLICT (student_id, week, report_date) DO UPDATE SET
	monday = EXCLUDED.monday,
	tuesday = EXCLUDED.tuesday,
	wednesday = EXCLUDED.wednesday,
	thursday = EXCLUDED.thursday,
	friday = EXCLUDED.friday,
	updated_at = EXCLUDED.updated_at
RETURNING %s`, reportColumns)

	rows, err := r.db.NamedQueryContext(ctx, query, report)
	if err != nil {
		return nil, fmt.Errorf("upsert report: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		return nil, fmt.Errorf("upsert report: no row returned")
	}
	var stored models.WeeklyReport
	if err := rows.StructScan(&stored); err != nil {
		return nil, fmt.Errorf("scan report: %w", err)
	}
	return &stored, nil
}

// ListByStudent returns all reports for a student in submission order.
func (r *ReportRepository) ListByStudent(ctx context.Context, studentID string) ([]models.WeeklyReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM weekly_reports WHERE student_id = $1 ORDER BY submitted_at ASC`, reportColumns)
	var reports []models.WeeklyReport
	if err := r.db.SelectContext(ctx, &reports, query, studentID); err != nil {
		return nil, fmt.Errorf("list reports by student: %w", err)
	}
	return reports, nil
}
