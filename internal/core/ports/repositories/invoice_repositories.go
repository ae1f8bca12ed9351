package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	// SaveInvoice runs in one transaction: assigns the next sequential invoice
	// number for the business, inserts the invoice with its items, and
	// decrements the stock of every referenced product by the item quantity
	// (unchecked; stock may go negative). The assigned number is written back
	// to the passed invoice.
	SaveInvoice(ctx context.Context, invoice *domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindInvoicesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string, businessID string) error
}
