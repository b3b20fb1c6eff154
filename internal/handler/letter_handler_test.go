package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwes-hub/placement-api/internal/models"
	"github.com/siwes-hub/placement-api/internal/service"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type letterServiceMock struct {
	uploadResp   *models.AcceptanceLetter
	uploadErr    error
	downloadResp *service.LetterDownload
	downloadErr  error
	lastStudent  string
}

func (m *letterServiceMock) Upload(ctx context.Context, studentID string, upload service.LetterUpload) (*models.AcceptanceLetter, error) {
	m.lastStudent = studentID
	return m.uploadResp, m.uploadErr
}

func (m *letterServiceMock) Download(ctx context.Context, token string) (*service.LetterDownload, error) {
	return m.downloadResp, m.downloadErr
}

func multipartLetterRequest(t *testing.T, studentID string, withFile bool) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	require.NoError(t, writer.WriteField("studentID", studentID))
	if withFile {
		part, err := writer.CreateFormFile("file", "letter.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/upload-acceptance-letter", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestLetterUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &letterServiceMock{
		uploadResp: &models.AcceptanceLetter{ID: "letter-1", StudentID: "student-1", FileURL: "http://localhost:5000/letters/download?token=abc"},
	}
	handler := NewLetterHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartLetterRequest(t, "student-1", true)

	handler.Upload(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student-1", mockSvc.lastStudent)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	require.Contains(t, body, "letter")
}

func TestLetterUploadMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLetterHandler(&letterServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartLetterRequest(t, "student-1", false)

	handler.Upload(c)

	// File intake failures are the one class keeping a server-error status.
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "student-1", body["studentID"])
}

func TestLetterUploadValidationStays200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLetterHandler(&letterServiceMock{
		uploadErr: appErrors.Clone(appErrors.ErrValidation, "unsupported file type"),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartLetterRequest(t, "student-1", true)

	handler.Upload(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "unsupported file type", body["err"])
}

func TestLetterDownloadMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLetterHandler(&letterServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/letters/download", nil)
	c.Request = req

	handler.Download(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
