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

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(db *pgxpool.Pool) portsrepo.VendorRepository {
	return &PgxVendorRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VendorRepository = (*PgxVendorRepository)(nil)

const vendorColumns = `id, name, email, phone, gstin, address, business_id, opening_balance, created_at`

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.Phone,
		&v.GSTIN,
		&v.Address,
		&v.BusinessID,
		&v.OpeningBalance,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
        INSERT INTO vendors (id, name, email, phone, gstin, address, business_id, opening_balance, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Email,
		vendor.Phone,
		vendor.GSTIN,
		vendor.Address,
		vendor.BusinessID,
		vendor.OpeningBalance,
		vendor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1;`
	vendor, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}
	return vendor, nil
}

func (r *PgxVendorRepository) FindVendorsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors for business %s: %w", businessID, err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	return vendors, rows.Err()
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
        UPDATE vendors
        SET name = $1, email = $2, phone = $3, gstin = $4, address = $5, opening_balance = $6
        WHERE id = $7 AND business_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		vendor.Name,
		vendor.Email,
		vendor.Phone,
		vendor.GSTIN,
		vendor.Address,
		vendor.OpeningBalance,
		vendor.ID,
		vendor.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor %s: %w", vendor.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string, businessID string) error {
	query := `DELETE FROM vendors WHERE id = $1 AND business_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, vendorID, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
