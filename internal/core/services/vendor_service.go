package services

import (
	"context"
	"time"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/google/uuid"
)

type vendorService struct {
	vendorRepo portsrepo.VendorRepository
}

// NewVendorService creates a VendorSvcFacade.
func NewVendorService(vendorRepo portsrepo.VendorRepository) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) CreateVendor(ctx context.Context, businessID string, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	vendor := domain.Vendor{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		GSTIN:          req.GSTIN,
		Address:        req.Address,
		BusinessID:     businessID,
		OpeningBalance: req.OpeningBalance,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, businessID string) ([]domain.Vendor, error) {
	return s.vendorRepo.FindVendorsByBusiness(ctx, businessID, listLimit)
}

func (s *vendorService) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, businessID string, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	existing, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	updated := domain.Vendor{
		ID:             vendorID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		GSTIN:          req.GSTIN,
		Address:        req.Address,
		BusinessID:     businessID,
		OpeningBalance: req.OpeningBalance,
		CreatedAt:      existing.CreatedAt,
	}
	if err := s.vendorRepo.UpdateVendor(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string, businessID string) error {
	return s.vendorRepo.DeleteVendor(ctx, vendorID, businessID)
}
