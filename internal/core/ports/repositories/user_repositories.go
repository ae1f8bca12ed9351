package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetUserBusiness points the user at a business; called once when the
	// user creates their first business (and overwritten on later creates).
	SetUserBusiness(ctx context.Context, userID string, businessID string) error
}
