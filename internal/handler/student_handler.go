package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/response"
)

type studentAuthService interface {
	RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*models.Student, error)
	LoginStudent(ctx context.Context, req dto.LoginRequest) (*models.Student, string, error)
}

type studentProfileService interface {
	Profile(ctx context.Context, studentID string) (*models.Student, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.Student, error)
	DecrementHits(ctx context.Context, req dto.DecrementHitsRequest) (*models.Student, error)
}

// StudentHandler wires the student account endpoints.
type StudentHandler struct {
	auth     studentAuthService
	students studentProfileService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(auth studentAuthService, students studentProfileService) *StudentHandler {
	return &StudentHandler{auth: auth, students: students}
}

// Register godoc
// @Summary Register student account
// @Description Create a student account after a username uniqueness check
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.RegisterStudentRequest true "Registration payload"
// @Success 200 {object} map[string]interface{}
// @Router /student/register [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid registration payload"), nil)
		return
	}

	student, err := h.auth.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		fields := gin.H{"username": req.Username}
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrDuplicate.Code {
			fields["exists"] = true
		}
		response.Fail(c, err, fields)
		return
	}

	response.OK(c, gin.H{"student": student})
}

// Login godoc
// @Summary Authenticate student
// @Description Verify credentials by matric number and issue a session token
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Router /student/login [post]
func (h *StudentHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid login payload"), nil)
		return
	}

	student, token, err := h.auth.LoginStudent(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err, gin.H{"username": req.Username})
		return
	}

	response.OK(c, gin.H{"student": student, "token": token})
}

// Profile godoc
// @Summary Fetch student profile
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.StudentRef true "Student reference"
// @Success 200 {object} map[string]interface{}
// @Router /student/profile [post]
func (h *StudentHandler) Profile(c *gin.Context) {
	var req dto.StudentRef
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "studentID is required"), nil)
		return
	}

	student, err := h.students.Profile(c.Request.Context(), req.StudentID)
	if err != nil {
		response.Fail(c, err, gin.H{"studentID": req.StudentID})
		return
	}

	response.OK(c, gin.H{"student": student})
}

// Update godoc
// @Summary Update student profile
// @Description Re-authenticate and replace the submitted profile fields
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} map[string]interface{}
// @Router /update [patch]
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid profile payload"), nil)
		return
	}

	student, err := h.students.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err, gin.H{"username": req.Username})
		return
	}

	response.OK(c, gin.H{"student": student})
}

// DecrementHits godoc
// @Summary Decrement the hits counter
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.DecrementHitsRequest true "Target username"
// @Success 200 {object} map[string]interface{}
// @Router /api/delete [post]
func (h *StudentHandler) DecrementHits(c *gin.Context) {
	var req dto.DecrementHitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "username is required"), nil)
		return
	}

	student, err := h.students.DecrementHits(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err, gin.H{"username": req.Username})
		return
	}

	response.OK(c, gin.H{"student": student})
}
