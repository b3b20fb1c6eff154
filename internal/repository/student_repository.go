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

const studentColumns = `id, username, first_name, last_name, middle_name, school, level, course, matric_number, gender, phone_number, password_hash, supervisor_id, supervisor_name, hits_num, created_at, updated_at`

// StudentRepository provides database access for student accounts.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByUsername returns a student by username.
func (r *StudentRepository) FindByUsername(ctx context.Context, username string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE username = $1 LIMIT 1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by username: %w", err)
	}
	return &student, nil
}

// FindByMatric returns a student by matric number.
func (r *StudentRepository) FindByMatric(ctx context.Context, matric string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE matric_number = $1 LIMIT 1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, matric); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by matric: %w", err)
	}
	return &student, nil
}

// FindByID returns a student by identifier.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1 LIMIT 1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}
	return &student, nil
}

// Create inserts a new student account.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now

	const query = `INSERT INTO students (id, username, first_name, last_name, middle_name, school, level, course, matric_number, gender, phone_number, password_hash, hits_num, created_at, updated_at) VALUES (:id, :username, :first_name, :last_name, :middle_name, :school, :level, :course, :matric_number, :gender, :phone_number, :password_hash, :hits_num, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdateProfile replaces the mutable profile fields of a student.
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET first_name = :first_name, last_name = :last_name, school = :school, level = :level, course = :course, phone_number = :phone_number, updated_at = :updated_at WHERE username = :username`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("update student profile: %w", err)
	}
	return nil
}

// Assign stamps the student with the selected supervisor. Roster membership
// is derived from this column, so both sides of the assignment are a single
// atomic write.
func (r *StudentRepository) Assign(ctx context.Context, studentID, supervisorID, supervisorName string) error {
	const query = `UPDATE students SET supervisor_id = $2, supervisor_name = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, studentID, supervisorID, supervisorName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("assign supervisor: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListBySupervisor returns the derived roster for a supervisor, oldest
// assignment first.
func (r *StudentRepository) ListBySupervisor(ctx context.Context, supervisorID string) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE supervisor_id = $1 ORDER BY updated_at ASC`, studentColumns)
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, supervisorID); err != nil {
		return nil, fmt.Errorf("list students by supervisor: %w", err)
	}
	return students, nil
}

// DecrementHits lowers the vestigial hits counter and returns the record.
func (r *StudentRepository) DecrementHits(ctx context.Context, username string, delta int) (*models.Student, error) {
	query := fmt.Sprintf(`UPDATE students SET hits_num = hits_num - $2, updated_at = $3 WHERE username = $1 RETURNING %s`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, username, delta, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("decrement hits: %w", err)
	}
	return &student, nil
}
