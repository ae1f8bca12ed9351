package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/billbook-app/billbook_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultTaxRate       = 18
	defaultFinancialYear = "2024-25"
	listLimit            = 1000
)

type businessService struct {
	businessRepo portsrepo.BusinessRepository
	userRepo     portsrepo.UserRepository
}

// NewBusinessService creates a BusinessSvcFacade.
func NewBusinessService(businessRepo portsrepo.BusinessRepository, userRepo portsrepo.UserRepository) portssvc.BusinessSvcFacade {
	return &businessService{businessRepo: businessRepo, userRepo: userRepo}
}

func (s *businessService) CreateBusiness(ctx context.Context, owner domain.User, req dto.CreateBusinessRequest) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	taxRate := decimal.NewFromInt(defaultTaxRate)
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	business := domain.Business{
		ID:            uuid.NewString(),
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		OwnerID:       owner.ID,
		FinancialYear: defaultFinancialYear,
		TaxRate:       taxRate,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		logger.Error("Failed to save business", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save business: %w", err)
	}

	if err := s.userRepo.SetUserBusiness(ctx, owner.ID, business.ID); err != nil {
		logger.Error("Failed to link user to new business", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to link user to business: %w", err)
	}

	logger.Info("Business created", slog.String("business_id", business.ID))
	return &business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, ownerID string) ([]domain.Business, error) {
	return s.businessRepo.FindBusinessesByOwner(ctx, ownerID, listLimit)
}

func (s *businessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	return s.businessRepo.FindBusinessByID(ctx, businessID)
}

func (s *businessService) UpdateBusiness(ctx context.Context, businessID string, ownerID string, req dto.CreateBusinessRequest) (*domain.Business, error) {
	existing, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	taxRate := existing.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	updated := domain.Business{
		ID:            businessID,
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		OwnerID:       ownerID,
		FinancialYear: existing.FinancialYear,
		TaxRate:       taxRate,
		CreatedAt:     existing.CreatedAt,
	}

	if err := s.businessRepo.UpdateBusiness(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
