package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/export"
)

type reportRepository interface {
	Upsert(ctx context.Context, report *models.WeeklyReport) (*models.WeeklyReport, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.WeeklyReport, error)
}

type reportStudentResolver interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// LogbookExport bundles rendered logbook bytes with response metadata.
type LogbookExport struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportService upserts weekly logbook reports and renders logbook exports.
type ReportService struct {
	repo      reportRepository
	students  reportStudentResolver
	csv       csvRenderer
	pdf       pdfRenderer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(repo reportRepository, students reportStudentResolver, csv csvRenderer, pdf pdfRenderer, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ReportService{repo: repo, students: students, csv: csv, pdf: pdf, validator: validate, logger: logger}
}

// Upload stores or replaces one week of narratives for a student.
func (s *ReportService) Upload(ctx context.Context, req dto.UploadReportRequest) (*models.WeeklyReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report payload")
	}

	report := &models.WeeklyReport{
		StudentID:  req.StudentID,
		Monday:     req.Monday,
		Tuesday:    req.Tuesday,
		Wednesday:  req.Wednesday,
		Thursday:   req.Thursday,
		Friday:     req.Friday,
		Week:       req.Week,
		ReportDate: req.Date,
	}

	stored, err := s.repo.Upsert(ctx, report)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to store weekly report")
	}
	return stored, nil
}

// List returns every report a student has submitted, oldest first.
func (s *ReportService) List(ctx context.Context, studentID string) ([]models.WeeklyReport, error) {
	reports, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to list reports")
	}
	return reports, nil
}

// ExportLogbook renders a student's full report history as CSV or PDF for the
// printed logbook handed to the industry-based supervisor.
func (s *ReportService) ExportLogbook(ctx context.Context, studentID, format string) (*LogbookExport, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch student")
	}

	reports, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to list reports")
	}

	dataset := export.Dataset{
		Headers: []string{"Week", "Date", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
	for _, report := range reports {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Week":      report.Week,
			"Date":      report.ReportDate,
			"Monday":    report.Monday,
			"Tuesday":   report.Tuesday,
			"Wednesday": report.Wednesday,
			"Thursday":  report.Thursday,
			"Friday":    report.Friday,
		})
	}

	base := fmt.Sprintf("logbook-%s", student.MatricNumber)
	switch format {
	case "pdf":
		title := fmt.Sprintf("SIWES logbook - %s %s", student.LastName, student.FirstName)
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render logbook pdf")
		}
		return &LogbookExport{Content: content, ContentType: "application/pdf", Filename: base + ".pdf"}, nil
	case "", "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render logbook csv")
		}
		return &LogbookExport{Content: content, ContentType: "text/csv", Filename: base + ".csv"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
