package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-side queries behind the dashboards and
// reports. Sums and counts are pushed down to the store; list slices are
// capped rather than paginated.
type ReportingRepository interface {
	SumInvoiceTotals(ctx context.Context, businessID string) (decimal.Decimal, error)
	SumExpenseTotals(ctx context.Context, businessID string) (decimal.Decimal, error)
	// SumOutstandingBalance sums the balance of invoices not yet fully paid.
	SumOutstandingBalance(ctx context.Context, businessID string) (decimal.Decimal, error)
	CountCustomers(ctx context.Context, businessID string) (int64, error)
	CountInvoices(ctx context.Context, businessID string) (int64, error)
	CountProducts(ctx context.Context, businessID string) (int64, error)
	RecentInvoices(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error)
	RecentExpenses(ctx context.Context, businessID string, limit int) ([]domain.Expense, error)
	LowStockProducts(ctx context.Context, businessID string, limit int) ([]domain.Product, error)
	// InvoicesByDate lists invoices ordered by invoice date descending.
	InvoicesByDate(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error)
	// ExpensesByDate lists expenses ordered by expense date descending.
	ExpensesByDate(ctx context.Context, businessID string, limit int) ([]domain.Expense, error)
	CountProjects(ctx context.Context, businessID string) (int64, error)
	ProjectsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.SolarProject, error)
	// CountPendingSubsidies counts pending subsidy records across all
	// projects; subsidy records carry no business reference.
	CountPendingSubsidies(ctx context.Context) (int64, error)
}
