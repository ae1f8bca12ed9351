package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
// FindCustomerByID is deliberately not business-scoped; update and delete are.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	FindCustomersByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string, businessID string) error
}
