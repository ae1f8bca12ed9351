package services

import (
	"context"
	"testing"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/billbook-app/billbook_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "billbook-test"
)

func newTestAuthService(userRepo *MockUserRepository) *authService {
	return NewAuthService(userRepo, testSecret, time.Hour, testIssuer).(*authService)
}

func TestSignupSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("FindUserByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" && u.IsActive && u.PasswordHash != "password123"
	})).Return(nil)

	user, token, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "new@example.com",
		Password: "password123",
		Name:     "New User",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)

	userRepo.AssertExpectations(t)
}

func TestSignupDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	existing := &domain.User{ID: "u1", Email: "taken@example.com"}
	userRepo.On("FindUserByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, _, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Dup",
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	userRepo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", Email: "user@example.com", PasswordHash: hash}
	userRepo.On("FindUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "user@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", Email: "user@example.com", PasswordHash: hash}
	userRepo.On("FindUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Same sentinel as a wrong password.
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
