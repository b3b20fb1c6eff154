package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

// The consuming frontend predates this service and branches on a success flag
// rather than HTTP status codes: every outcome is delivered with status 200
// except file-intake failures, which keep a server-error status. Helpers here
// enforce that contract so handlers never set statuses by hand.

// OK sends a success envelope, merging the provided fields.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail sends a failure envelope at HTTP 200 with the error message and code,
// echoing any identifying fields (username, studentID) the caller supplies.
func Fail(c *gin.Context, err error, fields gin.H) {
	failWithStatus(c, http.StatusOK, err, fields)
}

// FailUpload sends a failure envelope keeping the error's real HTTP status.
// Only the file-intake path uses this.
func FailUpload(c *gin.Context, err error, fields gin.H) {
	appErr := appErrors.FromError(err)
	status := appErr.Status
	if status < http.StatusInternalServerError {
		status = http.StatusInternalServerError
	}
	failWithStatus(c, status, err, fields)
}

// Error sends a failure envelope at the error's own HTTP status. Token-guarded
// routes use this; the legacy 200 contract does not cover them.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	failWithStatus(c, appErr.Status, err, nil)
}

func failWithStatus(c *gin.Context, status int, err error, fields gin.H) {
	appErr := appErrors.FromError(err)
	body := gin.H{
		"success": false,
		"err":     appErr.Message,
		"code":    appErr.Code,
	}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}
