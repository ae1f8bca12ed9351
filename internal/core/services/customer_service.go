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

type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a CustomerSvcFacade.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, businessID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
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
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, businessID string) ([]domain.Customer, error) {
	return s.customerRepo.FindCustomersByBusiness(ctx, businessID, listLimit)
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, businessID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated := domain.Customer{
		ID:             customerID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		GSTIN:          req.GSTIN,
		Address:        req.Address,
		BusinessID:     businessID,
		OpeningBalance: req.OpeningBalance,
		CreatedAt:      existing.CreatedAt,
	}
	if err := s.customerRepo.UpdateCustomer(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, businessID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID, businessID)
}
