package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// UserSvcFacade resolves authenticated users.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
