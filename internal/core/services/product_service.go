package services

import (
	"context"
	"time"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultProductUnit  = "pcs"
	defaultLowStockMark = 10
)

type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a ProductSvcFacade.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

func productFromRequest(req dto.CreateProductRequest) domain.Product {
	unit := req.Unit
	if unit == "" {
		unit = defaultProductUnit
	}
	taxRate := decimal.NewFromInt(defaultTaxRate)
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	lowStockAlert := decimal.NewFromInt(defaultLowStockMark)
	if req.LowStockAlert != nil {
		lowStockAlert = *req.LowStockAlert
	}

	return domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		HSNCode:       req.HSNCode,
		Unit:          unit,
		Price:         req.Price,
		TaxRate:       taxRate,
		StockQuantity: req.StockQuantity,
		LowStockAlert: lowStockAlert,
	}
}

func (s *productService) CreateProduct(ctx context.Context, businessID string, req dto.CreateProductRequest) (*domain.Product, error) {
	product := productFromRequest(req)
	product.ID = uuid.NewString()
	product.BusinessID = businessID
	product.CreatedAt = time.Now().UTC()

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) ListProducts(ctx context.Context, businessID string) ([]domain.Product, error) {
	return s.productRepo.FindProductsByBusiness(ctx, businessID, listLimit)
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, businessID string, req dto.CreateProductRequest) (*domain.Product, error) {
	existing, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Full replacement, stock included. A stock write here bypasses the
	// invoice/consumption decrement paths.
	product := productFromRequest(req)
	product.ID = productID
	product.BusinessID = businessID
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string, businessID string) error {
	return s.productRepo.DeleteProduct(ctx, productID, businessID)
}
