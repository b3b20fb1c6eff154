package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type letterRepository interface {
	Upsert(ctx context.Context, letter *models.AcceptanceLetter) (*models.AcceptanceLetter, error)
	FindByStudent(ctx context.Context, studentID string) (*models.AcceptanceLetter, error)
}

type letterFileStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
}

type letterSignedURLSigner interface {
	Generate(id, relPath string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (id, relPath string, expiresAt time.Time, err error)
}

// LetterUpload carries upload metadata and the stream reader.
type LetterUpload struct {
	Filename string
	Size     int64
	MimeType string
	Content  io.Reader
}

// LetterDownload bundles a stored file handle with response metadata.
type LetterDownload struct {
	File      *os.File
	Filename  string
	SizeBytes int64
}

// LetterServiceConfig holds validation parameters and the public base URL
// embedded into stored retrieval links.
type LetterServiceConfig struct {
	MaxFileSize   int64
	AllowedMIMEs  []string
	PublicBaseURL string
}

// LetterService stores acceptance-letter scans and upserts the record
// pointing at them. File intake completes before the store write begins; the
// stored URL is the only field the upsert carries.
type LetterService struct {
	repo    letterRepository
	storage letterFileStorage
	signer  letterSignedURLSigner
	logger  *zap.Logger
	cfg     LetterServiceConfig
	mimeSet map[string]struct{}
}

// NewLetterService constructs the service with defaults.
func NewLetterService(repo letterRepository, storage letterFileStorage, signer letterSignedURLSigner, logger *zap.Logger, cfg LetterServiceConfig) *LetterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 5 * 1024 * 1024
	}
	if len(cfg.AllowedMIMEs) == 0 {
		cfg.AllowedMIMEs = []string{"application/pdf", "image/jpeg", "image/png"}
	}
	mimeSet := make(map[string]struct{}, len(cfg.AllowedMIMEs))
	for _, mt := range cfg.AllowedMIMEs {
		mimeSet[strings.ToLower(mt)] = struct{}{}
	}
	return &LetterService{repo: repo, storage: storage, signer: signer, logger: logger, cfg: cfg, mimeSet: mimeSet}
}

// Upload stores the scan, mints its retrieval URL and upserts the letter
// record for the student. Tokens are keyed on the student rather than the
// row id, so the URL written on a replacement stays valid no matter which
// row id the upsert keeps. The superseded scan is removed once the new
// record is durable.
func (s *LetterService) Upload(ctx context.Context, studentID string, upload LetterUpload) (*models.AcceptanceLetter, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "studentID is required")
	}
	if upload.Size > s.cfg.MaxFileSize {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file exceeds maximum size")
	}
	if _, ok := s.mimeSet[strings.ToLower(upload.MimeType)]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported file type")
	}

	prev, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch letter record")
	}

	relPath := filepath.Join("letters", uuid.NewString()+sanitizeExt(upload.Filename))
	if _, err := s.storage.SaveStream(relPath, upload.Content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpload.Code, appErrors.ErrUpload.Status, "failed to store letter file")
	}

	token, _, err := s.signer.Generate(studentID, relPath)
	if err != nil {
		s.cleanup(relPath)
		return nil, appErrors.Wrap(err, appErrors.ErrUpload.Code, appErrors.ErrUpload.Status, "failed to sign letter url")
	}
	fileURL := fmt.Sprintf("%s/letters/download?token=%s", strings.TrimRight(s.cfg.PublicBaseURL, "/"), token)

	letter := &models.AcceptanceLetter{
		StudentID: studentID,
		FileURL:   fileURL,
		FilePath:  relPath,
	}
	stored, err := s.repo.Upsert(ctx, letter)
	if err != nil {
		s.cleanup(relPath)
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to store letter record")
	}

	if prev != nil && prev.FilePath != "" && prev.FilePath != relPath {
		s.cleanup(prev.FilePath)
	}
	return stored, nil
}

// Get returns the letter record for a student.
func (s *LetterService) Get(ctx context.Context, studentID string) (*models.AcceptanceLetter, error) {
	letter, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch letter")
	}
	return letter, nil
}

// Download validates a signed token and opens the referenced scan. A token
// minted before a replacement parses fine but no longer matches the stored
// path, so only the current URL serves the file.
func (s *LetterService) Download(ctx context.Context, token string) (*LetterDownload, error) {
	studentID, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid download token")
	}

	letter, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch letter")
	}
	if letter.FilePath != relPath {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid download token")
	}

	file, err := s.storage.Open(letter.FilePath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "letter file missing")
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stat letter file")
	}

	return &LetterDownload{File: file, Filename: filepath.Base(letter.FilePath), SizeBytes: info.Size()}, nil
}

func (s *LetterService) cleanup(relPath string) {
	if err := s.storage.Delete(relPath); err != nil {
		s.logger.Warn("failed to remove letter file", zap.String("path", relPath), zap.Error(err))
	}
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".jpg", ".jpeg", ".png":
		return ext
	default:
		return ""
	}
}
