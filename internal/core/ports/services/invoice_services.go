package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// InvoiceSvcFacade manages invoices of one business. CreateInvoice validates
// the customer, derives subtotal/tax/total/balance/status, assigns the next
// INV number and decrements product stock.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string, businessID string) error
}
