package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for products. Stock
// decrements happen inside the invoice and material-consumption transactions,
// not through this interface.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProductsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string, businessID string) error
}
