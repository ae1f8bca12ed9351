package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// BusinessSvcFacade manages businesses. CreateBusiness additionally points the
// creating user's business reference at the new business.
type BusinessSvcFacade interface {
	CreateBusiness(ctx context.Context, owner domain.User, req dto.CreateBusinessRequest) (*domain.Business, error)
	ListBusinesses(ctx context.Context, ownerID string) ([]domain.Business, error)
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, businessID string, ownerID string, req dto.CreateBusinessRequest) (*domain.Business, error)
}
