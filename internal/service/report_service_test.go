package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/export"
)

type reportRepoMock struct {
	reports []models.WeeklyReport
	listErr error
	upserts int
}

func (m *reportRepoMock) Upsert(ctx context.Context, report *models.WeeklyReport) (*models.WeeklyReport, error) {
	m.upserts++
	stored := *report
	stored.ID = "report-1"
	return &stored, nil
}

func (m *reportRepoMock) ListByStudent(ctx context.Context, studentID string) ([]models.WeeklyReport, error) {
	return m.reports, m.listErr
}

type studentResolverMock struct {
	student *models.Student
	err     error
}

func (m *studentResolverMock) FindByID(ctx context.Context, id string) (*models.Student, error) {
	return m.student, m.err
}

func TestReportUploadUpserts(t *testing.T) {
	repo := &reportRepoMock{}
	svc := NewReportService(repo, &studentResolverMock{}, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)

	report, err := svc.Upload(context.Background(), dto.UploadReportRequest{
		StudentID: "student-1",
		Week:      "Week 1",
		Date:      "2024-03-08",
		Monday:    "orientation",
	})
	require.NoError(t, err)
	assert.Equal(t, "report-1", report.ID)
	assert.Equal(t, 1, repo.upserts)
}

func TestReportUploadRequiresWeekAndDate(t *testing.T) {
	svc := NewReportService(&reportRepoMock{}, &studentResolverMock{}, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)

	_, err := svc.Upload(context.Background(), dto.UploadReportRequest{StudentID: "student-1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportLogbookCSV(t *testing.T) {
	repo := &reportRepoMock{reports: []models.WeeklyReport{
		{Week: "Week 1", ReportDate: "2024-03-08", Monday: "orientation", Friday: "review"},
		{Week: "Week 2", ReportDate: "2024-03-15", Monday: "pairing"},
	}}
	students := &studentResolverMock{student: &models.Student{
		ID: "student-1", FirstName: "John", LastName: "Doe", MatricNumber: "CSC-2020-001",
	}}
	svc := NewReportService(repo, students, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)

	out, err := svc.ExportLogbook(context.Background(), "student-1", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", out.ContentType)
	assert.Equal(t, "logbook-CSC-2020-001.csv", out.Filename)

	content := string(out.Content)
	assert.True(t, strings.HasPrefix(content, "Week,Date,Monday"))
	assert.Contains(t, content, "orientation")
	assert.Contains(t, content, "Week 2")
}

func TestExportLogbookPDF(t *testing.T) {
	repo := &reportRepoMock{reports: []models.WeeklyReport{{Week: "Week 1", ReportDate: "2024-03-08"}}}
	students := &studentResolverMock{student: &models.Student{ID: "student-1", MatricNumber: "CSC-2020-001"}}
	svc := NewReportService(repo, students, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)

	out, err := svc.ExportLogbook(context.Background(), "student-1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, "logbook-CSC-2020-001.pdf", out.Filename)
	assert.NotEmpty(t, out.Content)
}

func TestExportLogbookUnknownFormat(t *testing.T) {
	students := &studentResolverMock{student: &models.Student{ID: "student-1"}}
	svc := NewReportService(&reportRepoMock{}, students, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)

	_, err := svc.ExportLogbook(context.Background(), "student-1", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportLogbookStudentMissing(t *testing.T) {
	svc := NewReportService(&reportRepoMock{}, &studentResolverMock{err: sql.ErrNoRows}, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)

	_, err := svc.ExportLogbook(context.Background(), "ghost", "csv")
	require.Error(t, err)
	assert.Equal(t, "Not found", appErrors.FromError(err).Message)
}
