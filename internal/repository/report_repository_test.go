package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwes-hub/placement-api/internal/models"
)

func reportRows(ids ...string) *sqlmock.Rows {
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "student_id", "monday", "tuesday", "wednesday", "thursday", "friday",
		"week", "report_date", "submitted_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "student-1", "orientation", "setup", "reading", "pairing", "review",
			"Week 1", "2024-03-08", now, now)
	}
	return rows
}

func TestReportRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO weekly_reports")).
		WillReturnRows(reportRows("report-1"))

	stored, err := repo.Upsert(context.Background(), &models.WeeklyReport{
		StudentID:  "student-1",
		Week:       "Week 1",
		ReportDate: "2024-03-08",
		Monday:     "orientation",
	})
	require.NoError(t, err)
	assert.Equal(t, "report-1", stored.ID)
	assert.Equal(t, "Week 1", stored.Week)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("student-1").
		WillReturnRows(reportRows("report-1", "report-2"))

	reports, err := repo.ListByStudent(context.Background(), "student-1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "report-1", reports[0].ID)
}

func TestReportRepositoryListByStudentEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("student-2").
		WillReturnRows(reportRows())

	reports, err := repo.ListByStudent(context.Background(), "student-2")
	require.NoError(t, err)
	assert.Empty(t, reports)
}
