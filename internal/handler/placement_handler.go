package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	"github.com/siwes-hub/placement-api/internal/service"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/response"
)

type placementService interface {
	Upload(ctx context.Context, req dto.UploadDetailsRequest) (*models.PlacementDetails, *service.AssignmentResult, error)
	Get(ctx context.Context, studentID string) (*models.PlacementDetails, error)
}

// PlacementHandler wires the placement-details endpoints.
type PlacementHandler struct {
	placements placementService
}

// NewPlacementHandler creates a new handler.
func NewPlacementHandler(placements placementService) *PlacementHandler {
	return &PlacementHandler{placements: placements}
}

// UploadDetails godoc
// @Summary Upsert placement details
// @Description Store or replace the student's company placement and run supervisor assignment
// @Tags Placements
// @Accept json
// @Produce json
// @Param payload body dto.UploadDetailsRequest true "Placement payload"
// @Success 200 {object} map[string]interface{}
// @Router /student/upload-details [post]
func (h *PlacementHandler) UploadDetails(c *gin.Context) {
	var req dto.UploadDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid placement payload"), nil)
		return
	}

	details, assignment, err := h.placements.Upload(c.Request.Context(), req)
	if err != nil {
		fields := gin.H{"studentID": req.StudentID}
		if details != nil {
			// The placement write landed; only the assignment step failed.
			fields["details"] = details
		}
		response.Fail(c, err, fields)
		return
	}

	response.OK(c, gin.H{"details": details, "assignment": assignment})
}

// Company godoc
// @Summary Fetch placement details
// @Tags Placements
// @Accept json
// @Produce json
// @Param payload body dto.StudentRef true "Student reference"
// @Success 200 {object} map[string]interface{}
// @Router /student/company [post]
func (h *PlacementHandler) Company(c *gin.Context) {
	var req dto.StudentRef
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "studentID is required"), nil)
		return
	}

	details, err := h.placements.Get(c.Request.Context(), req.StudentID)
	if err != nil {
		response.Fail(c, err, gin.H{"studentID": req.StudentID})
		return
	}

	response.OK(c, gin.H{"details": details})
}
