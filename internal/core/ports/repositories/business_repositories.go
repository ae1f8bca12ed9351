package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// BusinessRepository defines persistence operations for businesses.
type BusinessRepository interface {
	SaveBusiness(ctx context.Context, business domain.Business) error
	// FindBusinessByID is not owner-scoped.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	FindBusinessesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Business, error)
	// UpdateBusiness replaces the editable fields, matching on both id and
	// owner; returns apperrors.ErrNotFound when no row matches.
	UpdateBusiness(ctx context.Context, business domain.Business) error
}
