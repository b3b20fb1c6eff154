package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/middleware"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/response"
)

type supervisorAuthService interface {
	RegisterSupervisor(ctx context.Context, req dto.RegisterSupervisorRequest) (*models.Supervisor, error)
	LoginSupervisor(ctx context.Context, req dto.LoginRequest) (*models.Supervisor, string, error)
}

type supervisorQueryService interface {
	Profile(ctx context.Context, supervisorID string) (*models.Supervisor, error)
	Roster(ctx context.Context, supervisorID string) ([]models.Student, error)
}

// SupervisorHandler wires the supervisor account endpoints.
type SupervisorHandler struct {
	auth        supervisorAuthService
	supervisors supervisorQueryService
}

// NewSupervisorHandler creates a new handler.
func NewSupervisorHandler(auth supervisorAuthService, supervisors supervisorQueryService) *SupervisorHandler {
	return &SupervisorHandler{auth: auth, supervisors: supervisors}
}

// Register godoc
// @Summary Register supervisor account
// @Description Create a supervisor account after a username uniqueness check
// @Tags Supervisors
// @Accept json
// @Produce json
// @Param payload body dto.RegisterSupervisorRequest true "Registration payload"
// @Success 200 {object} map[string]interface{}
// @Router /supervisor/register [post]
func (h *SupervisorHandler) Register(c *gin.Context) {
	var req dto.RegisterSupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid registration payload"), nil)
		return
	}

	supervisor, err := h.auth.RegisterSupervisor(c.Request.Context(), req)
	if err != nil {
		fields := gin.H{"username": req.Username}
		if appErr := appErrors.FromError(err); appErr.Code == appErrors.ErrDuplicate.Code {
			fields["exists"] = true
		}
		response.Fail(c, err, fields)
		return
	}

	response.OK(c, gin.H{"supervisor": supervisor})
}

// Login godoc
// @Summary Authenticate supervisor
// @Tags Supervisors
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Router /supervisor/login [post]
func (h *SupervisorHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, "invalid login payload"), nil)
		return
	}

	supervisor, token, err := h.auth.LoginSupervisor(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err, gin.H{"username": req.Username})
		return
	}

	response.OK(c, gin.H{"supervisor": supervisor, "token": token})
}

// Profile godoc
// @Summary Fetch supervisor profile
// @Description Accepts the supervisor reference in the body or as a query parameter
// @Tags Supervisors
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /supervisor/profile [post]
func (h *SupervisorHandler) Profile(c *gin.Context) {
	supervisorID := c.Query("supervisorID")
	if c.Request.Method == http.MethodPost {
		var req dto.SupervisorRef
		if err := c.ShouldBindJSON(&req); err == nil && req.SupervisorID != "" {
			supervisorID = req.SupervisorID
		}
	}
	if supervisorID == "" {
		response.Fail(c, appErrors.Clone(appErrors.ErrValidation, "supervisorID is required"), nil)
		return
	}

	supervisor, err := h.supervisors.Profile(c.Request.Context(), supervisorID)
	if err != nil {
		response.Fail(c, err, gin.H{"supervisorID": supervisorID})
		return
	}

	response.OK(c, gin.H{"supervisor": supervisor})
}

// Students godoc
// @Summary List assigned students
// @Description Return the roster of the authenticated supervisor
// @Tags Supervisors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /supervisor/students [get]
func (h *SupervisorHandler) Students(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok || claims.Role != models.RoleSupervisor {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	roster, err := h.supervisors.Roster(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, err, gin.H{"supervisorID": claims.UserID})
		return
	}

	response.OK(c, gin.H{"students": roster, "count": len(roster)})
}

func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
