package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// CustomerSvcFacade manages customers of one business. GetCustomer is not
// business-scoped; update and delete are.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, businessID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context, businessID string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, businessID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string, businessID string) error
}
