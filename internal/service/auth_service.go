package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/siwes-hub/placement-api/internal/dto"
	"github.com/siwes-hub/placement-api/internal/models"
	appErrors "github.com/siwes-hub/placement-api/pkg/errors"
)

type authStudentRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Student, error)
	FindByMatric(ctx context.Context, matric string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

type authSupervisorRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Supervisor, error)
	Create(ctx context.Context, supervisor *models.Supervisor) error
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// AuthService registers accounts, verifies credentials and issues session
// tokens for both students and supervisors.
type AuthService struct {
	students    authStudentRepository
	supervisors authSupervisorRepository
	validator   *validator.Validate
	logger      *zap.Logger
	config      AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(students authStudentRepository, supervisors authSupervisorRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &AuthService{students: students, supervisors: supervisors, validator: validate, logger: logger, config: config}
}

// RegisterStudent creates a student account after a uniqueness check.
func (s *AuthService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	if _, err := s.students.FindByUsername(ctx, req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "username already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to check username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	student := &models.Student{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		School:       req.School,
		Level:        req.Level,
		Course:       req.Course,
		MatricNumber: req.MatricNumber,
		Gender:       req.Gender,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to create student")
	}

	stored, err := s.students.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to load created student")
	}
	return stored, nil
}

// RegisterSupervisor creates a supervisor account after a uniqueness check.
func (s *AuthService) RegisterSupervisor(ctx context.Context, req dto.RegisterSupervisorRequest) (*models.Supervisor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	if _, err := s.supervisors.FindByUsername(ctx, req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "username already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to check username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	supervisor := &models.Supervisor{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		School:       req.School,
		Region:       req.Region,
		Gender:       req.Gender,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.supervisors.Create(ctx, supervisor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to create supervisor")
	}

	stored, err := s.supervisors.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to load created supervisor")
	}
	return stored, nil
}

// LoginStudent verifies a student's credentials and issues a session token.
// The submitted identity is matched against the matric number; the rejection
// message never reveals whether the identity exists.
func (s *AuthService) LoginStudent(ctx context.Context, req dto.LoginRequest) (*models.Student, string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	student, err := s.students.FindByMatric(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", appErrors.Clone(appErrors.ErrAuth, "invalid credentials")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch student")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrAuth, "invalid credentials")
	}

	token, err := s.generateToken(student.ID, student.Username, models.RoleStudent)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}
	return student, token, nil
}

// LoginSupervisor verifies a supervisor's credentials and issues a session token.
func (s *AuthService) LoginSupervisor(ctx context.Context, req dto.LoginRequest) (*models.Supervisor, string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	supervisor, err := s.supervisors.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", appErrors.Clone(appErrors.ErrAuth, "invalid credentials")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch supervisor")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(supervisor.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrAuth, "invalid credentials")
	}

	token, err := s.generateToken(supervisor.ID, supervisor.Username, models.RoleSupervisor)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}
	return supervisor, token, nil
}

// VerifyStudentPassword re-authenticates a student by username, used by the
// profile update flow.
func (s *AuthService) VerifyStudentPassword(ctx context.Context, username, password string) (*models.Student, error) {
	student, err := s.students.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrAuth, "invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "failed to fetch student")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrAuth, "invalid credentials")
	}
	return student, nil
}

// ValidateToken parses and validates a session token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateToken(userID, username string, role models.AccountRole) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
