package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
	"github.com/siwes-hub/placement-api/pkg/storage"
)

type letterRepoMock struct {
	stored    *models.AcceptanceLetter
	upsertErr error
	findErr   error
}

// Upsert mirrors the ON CONFLICT (student_id) statement: a conflicting row
// keeps its id while file_url and file_path are replaced.
func (m *letterRepoMock) Upsert(ctx context.Context, letter *models.AcceptanceLetter) (*models.AcceptanceLetter, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	stored := *letter
	if m.stored != nil && m.stored.StudentID == letter.StudentID {
		stored.ID = m.stored.ID
	} else if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	m.stored = &stored
	return &stored, nil
}

func (m *letterRepoMock) FindByStudent(ctx context.Context, studentID string) (*models.AcceptanceLetter, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.stored == nil || m.stored.StudentID != studentID {
		return nil, sql.ErrNoRows
	}
	return m.stored, nil
}

func newLetterService(t *testing.T, repo *letterRepoMock) (*LetterService, *storage.LocalStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	svc := NewLetterService(repo, store, signer, nil, LetterServiceConfig{
		MaxFileSize:   1024,
		PublicBaseURL: "http://localhost:5000",
	})
	return svc, store
}

func downloadToken(t *testing.T, letter *models.AcceptanceLetter) string {
	t.Helper()
	const prefix = "http://localhost:5000/letters/download?token="
	require.True(t, strings.HasPrefix(letter.FileURL, prefix))
	return strings.TrimPrefix(letter.FileURL, prefix)
}

func pdfUpload(content string) LetterUpload {
	return LetterUpload{
		Filename: "letter.pdf",
		Size:     int64(len(content)),
		MimeType: "application/pdf",
		Content:  strings.NewReader(content),
	}
}

func TestLetterUploadAndDownload(t *testing.T) {
	repo := &letterRepoMock{}
	svc, _ := newLetterService(t, repo)

	letter, err := svc.Upload(context.Background(), "student-1", pdfUpload("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, "student-1", letter.StudentID)
	assert.Contains(t, letter.FileURL, "http://localhost:5000/letters/download?token=")

	download, err := svc.Download(context.Background(), downloadToken(t, letter))
	require.NoError(t, err)
	defer download.File.Close()

	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(content))
}

func TestLetterReuploadKeepsStoredURLDownloadable(t *testing.T) {
	repo := &letterRepoMock{}
	svc, store := newLetterService(t, repo)

	first, err := svc.Upload(context.Background(), "student-1", pdfUpload("%PDF-1.4 v1"))
	require.NoError(t, err)
	firstToken := downloadToken(t, first)

	second, err := svc.Upload(context.Background(), "student-1", pdfUpload("%PDF-1.4 v2"))
	require.NoError(t, err)

	// The row id survives the replacement; the stored URL must still resolve.
	assert.Equal(t, first.ID, second.ID)
	download, err := svc.Download(context.Background(), downloadToken(t, second))
	require.NoError(t, err)
	defer download.File.Close()

	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 v2", string(content))

	// The superseded scan is gone and its token no longer matches the record.
	_, err = store.Open(first.FilePath)
	assert.Error(t, err)
	_, err = svc.Download(context.Background(), firstToken)
	assert.Error(t, err)
}

func TestLetterUploadRejectsUnsupportedType(t *testing.T) {
	svc, _ := newLetterService(t, &letterRepoMock{})

	_, err := svc.Upload(context.Background(), "student-1", LetterUpload{
		Filename: "letter.exe",
		Size:     10,
		MimeType: "application/octet-stream",
		Content:  strings.NewReader("MZ"),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLetterUploadRejectsOversizedFile(t *testing.T) {
	svc, _ := newLetterService(t, &letterRepoMock{})

	upload := pdfUpload("x")
	upload.Size = 2048
	_, err := svc.Upload(context.Background(), "student-1", upload)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLetterUploadCleansUpOnStoreFailure(t *testing.T) {
	repo := &letterRepoMock{upsertErr: errors.New("connection reset")}
	svc, _ := newLetterService(t, repo)

	_, err := svc.Upload(context.Background(), "student-1", pdfUpload("%PDF-1.4 test"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStore.Code, appErrors.FromError(err).Code)
}

func TestLetterDownloadRejectsTamperedToken(t *testing.T) {
	repo := &letterRepoMock{}
	svc, _ := newLetterService(t, repo)

	letter, err := svc.Upload(context.Background(), "student-1", pdfUpload("%PDF-1.4 test"))
	require.NoError(t, err)

	_, err = svc.Download(context.Background(), downloadToken(t, letter)+"0")
	assert.Error(t, err)
}

func TestLetterGetNotFound(t *testing.T) {
	svc, _ := newLetterService(t, &letterRepoMock{findErr: sql.ErrNoRows})

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "Not found", appErrors.FromError(err).Message)
}
