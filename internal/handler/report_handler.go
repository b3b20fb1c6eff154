package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	"github.com/siwes-hub/placement-api/internal/service"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/response"
)

type reportService interface {
	Upload(ctx context.Context, req dto.UploadReportRequest) (*models.WeeklyReport, error)
	List(ctx context.Context, studentID string) ([]models.WeeklyReport, error)
	ExportLogbook(ctx context.Context, studentID, format string) (*service.LogbookExport, error)
}

// ReportHandler wires the weekly report endpoints.
type ReportHandler struct {
	reports reportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(reports reportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// UploadReport godoc
// @Summary Upsert weekly report
// @Description Store or replace one week of logbook narratives for a student
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body dto.UploadReportRequest true "Report payload"
// @Success 200 {object} map[string]interface{}
// @Router /student/upload-report [post]
func (h *ReportHandler) UploadReport(c *gin.Context) {
	var req dto.UploadReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid report payload"), nil)
		return
	}

	report, err := h.reports.Upload(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err, gin.H{"studentID": req.StudentID})
		return
	}

	response.OK(c, gin.H{"report": report})
}

// Reports godoc
// @Summary List weekly reports
// @Description Return every report a student has submitted, oldest first
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body dto.StudentRef true "Student reference"
// @Success 200 {object} map[string]interface{}
// @Router /student/reports [post]
func (h *ReportHandler) Reports(c *gin.Context) {
	var req dto.StudentRef
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "studentID is required"), nil)
		return
	}

	reports, err := h.reports.List(c.Request.Context(), req.StudentID)
	if err != nil {
		response.Fail(c, err, gin.H{"studentID": req.StudentID})
		return
	}

	response.OK(c, gin.H{"reports": reports, "count": len(reports)})
}

// ExportLogbook godoc
// @Summary Export logbook
// @Description Render the authenticated student's full report history as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /student/logbook/export [get]
func (h *ReportHandler) ExportLogbook(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok || claims.Role != models.RoleStudent {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	export, err := h.reports.ExportLogbook(c.Request.Context(), claims.UserID, c.Query("format"))
	if err != nil {
		response.Fail(c, err, gin.H{"studentID": claims.UserID})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
