package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siwes-hub/placement-api/internal/models"
	"github.com/siwes-hub/placement-api/internal/service"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/response"
)

type letterService interface {
	Upload(ctx context.Context, studentID string, upload service.LetterUpload) (*models.AcceptanceLetter, error)
	Download(ctx context.Context, token string) (*service.LetterDownload, error)
}

// LetterHandler wires the acceptance-letter endpoints.
type LetterHandler struct {
	letters letterService
}

// NewLetterHandler creates a new handler.
func NewLetterHandler(letters letterService) *LetterHandler {
	return &LetterHandler{letters: letters}
}

// Upload godoc
// @Summary Upload acceptance letter
// @Description Store the scanned letter and upsert the letter record for the student
// @Tags Letters
// @Accept multipart/form-data
// @Produce json
// @Param studentID formData string true "Student reference"
// @Param file formData file true "Letter scan"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /upload-acceptance-letter [post]
func (h *LetterHandler) Upload(c *gin.Context) {
	studentID := c.PostForm("studentID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.FailUpload(c, appErrors.Wrap(err, appErrors.ErrUpload.Code, appErrors.ErrUpload.Status, "file is required"), gin.H{"studentID": studentID})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FailUpload(c, appErrors.Wrap(err, appErrors.ErrUpload.Code, appErrors.ErrUpload.Status, "failed to read uploaded file"), gin.H{"studentID": studentID})
		return
	}
	defer file.Close()

	letter, err := h.letters.Upload(c.Request.Context(), studentID, service.LetterUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  file,
	})
	if err != nil {
		if appErrors.FromError(err).Status >= http.StatusInternalServerError {
			response.FailUpload(c, err, gin.H{"studentID": studentID})
			return
		}
		response.Fail(c, err, gin.H{"studentID": studentID})
		return
	}

	response.OK(c, gin.H{"letter": letter})
}

// Download godoc
// @Summary Download acceptance letter
// @Description Serve a stored letter scan through its signed token
// @Tags Letters
// @Produce octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} file
// @Router /letters/download [get]
func (h *LetterHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Fail(c, appErrors.Clone(appErrors.ErrValidation, "token is required"), nil)
		return
	}

	download, err := h.letters.Download(c.Request.Context(), token)
	if err != nil {
		response.Fail(c, err, nil)
		return
	}
	defer download.File.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.DataFromReader(http.StatusOK, download.SizeBytes, "application/octet-stream", download.File, nil)
}
