package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/billbook-app/billbook_backend/internal/middleware"
	"github.com/billbook-app/billbook_backend/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	userRepo          portsrepo.UserRepository
	jwtSecret         string
	jwtExpiryDuration time.Duration
	jwtIssuer         string
}

// NewAuthService creates an AuthSvcFacade backed by the user repository.
func NewAuthService(userRepo portsrepo.UserRepository, jwtSecret string, jwtExpiryDuration time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:          userRepo,
		jwtSecret:         jwtSecret,
		jwtExpiryDuration: jwtExpiryDuration,
		jwtIssuer:         jwtIssuer,
	}
}

func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing user", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, "", apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Mobile:       req.Mobile,
		Name:         req.Name,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, "", apperrors.ErrDuplicate
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to save user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.jwtSecret, s.jwtExpiryDuration, s.jwtIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User signed up", slog.String("user_id", user.ID))
	return &user, token, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password so callers cannot probe for
			// registered emails.
			return nil, "", apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.jwtSecret, s.jwtExpiryDuration, s.jwtIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.ID))
	return user, token, nil
}
