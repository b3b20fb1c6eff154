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

const letterColumns = `id, student_id, file_url, file_path, created_at, updated_at`

// LetterRepository manages persistence for acceptance-letter records.
type LetterRepository struct {
	db *sqlx.DB
}

// NewLetterRepository constructs a LetterRepository.
func NewLetterRepository(db *sqlx.DB) *LetterRepository {
	return &LetterRepository{db: db}
}

// Upsert inserts or replaces the letter record for a student.
func (r *LetterRepository) Upsert(ctx context.Context, letter *models.AcceptanceLetter) (*models.AcceptanceLetter, error) {
	if letter.ID == "" {
		letter.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if letter.CreatedAt.IsZero() {
		letter.CreatedAt = now
	}
	letter.UpdatedAt = now

	query := fmt.Sprintf(`INSERT INTO acceptance_letters (id, student_id, file_url, file_path, created_at, updated_at)
VALUES (:id, :student_id, :file_url, :file_path, :created_at, :updated_at)
ON CONFLICT (student_id) DO UPDATE SET
	file_url = EXCLUDED.file_url,
	file_path = EXCLUDED.file_path,
	updated_at = EXCLUDED.updated_at
RETURNING %s`, letterColumns)

	rows, err := r.db.NamedQueryContext(ctx, query, letter)
	if err != nil {
		return nil, fmt.Errorf("upsert letter: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		return nil, fmt.Errorf("upsert letter: no row returned")
	}
	var stored models.AcceptanceLetter
	if err := rows.StructScan(&stored); err != nil {
		return nil, fmt.Errorf("scan letter: %w", err)
	}
	return &stored, nil
}

// FindByStudent fetches the letter record for a student.
func (r *LetterRepository) FindByStudent(ctx context.Context, studentID string) (*models.AcceptanceLetter, error) {
	query := fmt.Sprintf(`SELECT %s FROM acceptance_letters WHERE student_id = $1 LIMIT 1`, letterColumns)
	var letter models.AcceptanceLetter
	if err := r.db.GetContext(ctx, &letter, query, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find letter by student: %w", err)
	}
	return &letter, nil
}
