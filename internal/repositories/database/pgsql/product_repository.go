package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `id, name, description, sku, hsn_code, unit, price, tax_rate, business_id, stock_quantity, low_stock_alert, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.SKU,
		&p.HSNCode,
		&p.Unit,
		&p.Price,
		&p.TaxRate,
		&p.BusinessID,
		&p.StockQuantity,
		&p.LowStockAlert,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
        INSERT INTO products (id, name, description, sku, hsn_code, unit, price, tax_rate, business_id, stock_quantity, low_stock_alert, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.SKU,
		product.HSNCode,
		product.Unit,
		product.Price,
		product.TaxRate,
		product.BusinessID,
		product.StockQuantity,
		product.LowStockAlert,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`
	product, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

func (r *PgxProductRepository) FindProductsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for business %s: %w", businessID, err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products
        SET name = $1, description = $2, sku = $3, hsn_code = $4, unit = $5, price = $6, tax_rate = $7, stock_quantity = $8, low_stock_alert = $9
        WHERE id = $10 AND business_id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.SKU,
		product.HSNCode,
		product.Unit,
		product.Price,
		product.TaxRate,
		product.StockQuantity,
		product.LowStockAlert,
		product.ID,
		product.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string, businessID string) error {
	query := `DELETE FROM products WHERE id = $1 AND business_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, productID, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
