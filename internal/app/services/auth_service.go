package services

import (
	"context"
	"errors"
	"strings"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/auth"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	adminRepo  repositories.AdminUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates an auth service instance.
func NewAuthService(adminRepo repositories.AdminUserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{adminRepo: adminRepo, jwtService: jwtService}
}

// Login verifies admin credentials and issues a bearer token. Unknown
// email and wrong password both come back as ErrInvalidCredentials so
// the response does not leak which accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn().Str("email", email).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Email,
		Role:      string(user.Role),
		ExpiresIn: expiresIn,
	}, nil
}
