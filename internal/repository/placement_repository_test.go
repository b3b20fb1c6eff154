package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwes-hub/placement-api/internal/models"
)

func placementRows() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "student_id", "company_name", "company_address", "state", "lga", "company_email",
		"company_phone_number", "resumption_date", "termination_date", "assigned_department",
		"job_desc", "created_at", "updated_at",
	}).AddRow(
		"placement-1", "student-1", "Acme Ltd", "1 Industrial Rd", "Ondo", "Akure South", "hr@acme.test",
		"0800", "2024-03-01", "2024-08-31", "Engineering",
		"Software intern", now, now,
	)
}

func TestPlacementRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlacementRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO placement_details")).
		WillReturnRows(placementRows())

	stored, err := repo.Upsert(context.Background(), &models.PlacementDetails{
		StudentID:   "student-1",
		CompanyName: "Acme Ltd",
		State:       "Ondo",
	})
	require.NoError(t, err)
	assert.Equal(t, "placement-1", stored.ID)
	assert.Equal(t, "Acme Ltd", stored.CompanyName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacementRepositoryFindByStudentMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlacementRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByStudent(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
