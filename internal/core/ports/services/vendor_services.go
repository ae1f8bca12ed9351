package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// VendorSvcFacade manages vendors of one business.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, businessID string, req dto.CreateVendorRequest) (*domain.Vendor, error)
	ListVendors(ctx context.Context, businessID string) ([]domain.Vendor, error)
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, businessID string, req dto.CreateVendorRequest) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string, businessID string) error
}
