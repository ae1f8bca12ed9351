package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// ProductSvcFacade manages products of one business.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, businessID string, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, businessID string) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, businessID string, req dto.CreateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string, businessID string) error
}
