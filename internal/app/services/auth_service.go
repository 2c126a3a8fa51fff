package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/auth"
)

// AuthService handles authentication and registration
type AuthService struct {
	userRepo   repositories.IUserRepository
	streamRepo repositories.IStreamRepository
	hasher     auth.PasswordHasher
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	streamRepo repositories.IStreamRepository,
	hasher auth.PasswordHasher,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		streamRepo: streamRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		s.logger.Info().Int64("userID", user.ID).Msg("Login rejected: wrong password")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
	}

	token, _, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", user.Role.String()).Msg("User logged in")
	return &dto.TokenResponse{AccessToken: token, TokenType: auth.TokenType}, nil
}

// Authenticate resolves the user named by a bearer token
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewUnauthorizedError("Could not validate credentials")
		}
		return nil, fmt.Errorf("error resolving token subject: %w", err)
	}
	return user, nil
}

// RegisterStudent creates a student account
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.User, error) {
	if err := checkRequestedRole(req.Role, models.RoleStudent); err != nil {
		return nil, err
	}
	codeApoge := strings.TrimSpace(req.CodeApoge)
	cne := strings.TrimSpace(req.CNE)
	user := &models.User{
		FullName:  req.FullName,
		Email:     req.Email,
		Role:      models.RoleStudent,
		StreamID:  &req.StreamID,
		CodeApoge: &codeApoge,
		CNE:       &cne,
	}
	return s.register(ctx, user, req.Password)
}

// RegisterTeacher creates a teacher account
func (s *AuthService) RegisterTeacher(ctx context.Context, req *dto.RegisterTeacherRequest) (*models.User, error) {
	if err := checkRequestedRole(req.Role, models.RoleTeacher); err != nil {
		return nil, err
	}
	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     models.RoleTeacher,
		StreamID: &req.StreamID,
	}
	return s.register(ctx, user, req.Password)
}

// CreateAdmin creates an admin account. Callers must already be admins.
func (s *AuthService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.User, error) {
	if err := checkRequestedRole(req.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     models.RoleAdmin,
	}
	return s.register(ctx, user, req.Password)
}

func (s *AuthService) register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	user.FullName = strings.TrimSpace(user.FullName)
	user.Email = normalizeEmail(user.Email)
	if user.FullName == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "full_name cannot be empty")
	}
	if password == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "password cannot be empty")
	}

	exists, err := s.userRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if user.StreamID != nil {
		if _, err := s.streamRepo.GetByID(ctx, *user.StreamID); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", user.Role.String()).Msg("User registered")
	return user, nil
}

// checkRequestedRole rejects a payload role that disagrees with the endpoint
func checkRequestedRole(requested string, want models.Role) error {
	if strings.TrimSpace(requested) == "" {
		return nil
	}
	role, err := models.ParseRole(requested)
	if err != nil || role != want {
		return apperrors.NewBadRequestError(fmt.Sprintf("Role must be %s", want))
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
