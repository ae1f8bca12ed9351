package pgsql

import (
	"context"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository serves the read-side queries behind dashboards and
// reports. Sums use COALESCE so an empty business reports zero, not NULL.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) sumQuery(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *PgxReportingRepository) countQuery(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgxReportingRepository) SumInvoiceTotals(ctx context.Context, businessID string) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(total), 0) FROM invoices WHERE business_id = $1;`, businessID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum invoice totals: %w", err)
	}
	return sum, nil
}

func (r *PgxReportingRepository) SumExpenseTotals(ctx context.Context, businessID string) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(total), 0) FROM expenses WHERE business_id = $1;`, businessID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expense totals: %w", err)
	}
	return sum, nil
}

func (r *PgxReportingRepository) SumOutstandingBalance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM invoices WHERE business_id = $1 AND status != $2;`
	sum, err := r.sumQuery(ctx, query, businessID, domain.InvoiceStatusPaid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding balance: %w", err)
	}
	return sum, nil
}

func (r *PgxReportingRepository) CountCustomers(ctx context.Context, businessID string) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM customers WHERE business_id = $1;`, businessID)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountInvoices(ctx context.Context, businessID string) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM invoices WHERE business_id = $1;`, businessID)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountProducts(ctx context.Context, businessID string) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM products WHERE business_id = $1;`, businessID)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) RecentInvoices(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	return listInvoices(ctx, r.Pool, query, businessID, limit)
}

func (r *PgxReportingRepository) RecentExpenses(ctx context.Context, businessID string, limit int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	expenseRepo := PgxExpenseRepository{r.BaseRepository}
	return expenseRepo.listExpenses(ctx, query, businessID, limit)
}

func (r *PgxReportingRepository) LowStockProducts(ctx context.Context, businessID string, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 AND stock_quantity <= low_stock_alert ORDER BY stock_quantity LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
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

func (r *PgxReportingRepository) InvoicesByDate(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE business_id = $1 ORDER BY invoice_date DESC LIMIT $2;`
	return listInvoices(ctx, r.Pool, query, businessID, limit)
}

func (r *PgxReportingRepository) ExpensesByDate(ctx context.Context, businessID string, limit int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 ORDER BY expense_date DESC LIMIT $2;`
	expenseRepo := PgxExpenseRepository{r.BaseRepository}
	return expenseRepo.listExpenses(ctx, query, businessID, limit)
}

func (r *PgxReportingRepository) CountProjects(ctx context.Context, businessID string) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM solar_projects WHERE business_id = $1;`, businessID)
	if err != nil {
		return 0, fmt.Errorf("failed to count solar projects: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) ProjectsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.SolarProject, error) {
	query := `SELECT ` + solarProjectColumns + ` FROM solar_projects WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	return listSolarProjects(ctx, r.Pool, query, businessID, limit)
}

func (r *PgxReportingRepository) CountPendingSubsidies(ctx context.Context) (int64, error) {
	// Subsidy records carry no business reference; this count is global.
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM subsidy_tracking WHERE status = $1;`, domain.SubsidyPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending subsidies: %w", err)
	}
	return count, nil
}
