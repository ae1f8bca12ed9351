package pgsql

import (
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against one pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:            newPgxUserRepository(db),
		BusinessRepo:        newPgxBusinessRepository(db),
		CustomerRepo:        newPgxCustomerRepository(db),
		VendorRepo:          newPgxVendorRepository(db),
		ProductRepo:         newPgxProductRepository(db),
		ExpenseCategoryRepo: newPgxExpenseCategoryRepository(db),
		ExpenseRepo:         newPgxExpenseRepository(db),
		InvoiceRepo:         newPgxInvoiceRepository(db),
		PaymentRepo:         newPgxPaymentRepository(db),
		SolarProjectRepo:    newPgxSolarProjectRepository(db),
		SolarChildRepo:      newPgxSolarChildRepository(db),
		ReportingRepo:       newPgxReportingRepository(db),
	}
}
