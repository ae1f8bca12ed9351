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

type PgxBusinessRepository struct {
	BaseRepository
}

func newPgxBusinessRepository(db *pgxpool.Pool) portsrepo.BusinessRepository {
	return &PgxBusinessRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BusinessRepository = (*PgxBusinessRepository)(nil)

const businessColumns = `id, name, gstin, address, phone, email, owner_id, financial_year, tax_rate, created_at`

func scanBusiness(row pgx.Row) (*domain.Business, error) {
	var b domain.Business
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.GSTIN,
		&b.Address,
		&b.Phone,
		&b.Email,
		&b.OwnerID,
		&b.FinancialYear,
		&b.TaxRate,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	query := `
        INSERT INTO businesses (id, name, gstin, address, phone, email, owner_id, financial_year, tax_rate, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		business.ID,
		business.Name,
		business.GSTIN,
		business.Address,
		business.Phone,
		business.Email,
		business.OwnerID,
		business.FinancialYear,
		business.TaxRate,
		business.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1;`
	business, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}
	return business, nil
}

func (r *PgxBusinessRepository) FindBusinessesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	businesses := []domain.Business{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, *business)
	}
	return businesses, rows.Err()
}

func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	query := `
        UPDATE businesses
        SET name = $1, gstin = $2, address = $3, phone = $4, email = $5, financial_year = $6, tax_rate = $7
        WHERE id = $8 AND owner_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		business.Name,
		business.GSTIN,
		business.Address,
		business.Phone,
		business.Email,
		business.FinancialYear,
		business.TaxRate,
		business.ID,
		business.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", business.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
