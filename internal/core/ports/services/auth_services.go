package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// AuthSvcFacade issues and honours credentials. Signup fails with
// apperrors.ErrDuplicate when the email is taken; Login fails with
// apperrors.ErrUnauthorized for both unknown email and wrong password so the
// two are indistinguishable to the caller.
type AuthSvcFacade interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
}
