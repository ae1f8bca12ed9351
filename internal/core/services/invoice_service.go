package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/billbook-app/billbook_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// itemAmountTolerance bounds the accepted drift between the caller-supplied
// line amount and quantity*price-discount.
var itemAmountTolerance = decimal.NewFromFloat(0.01)

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepository
	customerRepo portsrepo.CustomerRepository
}

// NewInvoiceService creates an InvoiceSvcFacade.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, customerRepo portsrepo.CustomerRepository) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for i, itemReq := range req.Items {
		expected := itemReq.Quantity.Mul(itemReq.Price).Sub(itemReq.Discount)
		if itemReq.Amount.Sub(expected).Abs().GreaterThan(itemAmountTolerance) {
			return nil, fmt.Errorf("%w: item %d amount %s does not match quantity*price-discount (%s)",
				apperrors.ErrValidation, i, itemReq.Amount, expected)
		}
		items = append(items, domain.InvoiceItem{
			ProductID:   itemReq.ProductID,
			ProductName: itemReq.ProductName,
			Quantity:    itemReq.Quantity,
			Price:       itemReq.Price,
			TaxRate:     itemReq.TaxRate,
			Discount:    itemReq.Discount,
			Amount:      itemReq.Amount,
		})
	}

	subtotal, taxAmount, total := domain.ComputeInvoiceTotals(items, req.Discount)

	invoice := domain.Invoice{
		ID:           uuid.NewString(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		BusinessID:   businessID,
		InvoiceDate:  time.Now().UTC(),
		DueDate:      req.DueDate,
		Items:        items,
		Subtotal:     subtotal,
		TaxAmount:    taxAmount,
		Discount:     req.Discount,
		Total:        total,
		PaidAmount:   decimal.Zero,
		Balance:      total,
		Status:       domain.InvoiceStatusUnpaid,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, &invoice); err != nil {
		logger.Error("Failed to save invoice", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Invoice created",
		slog.String("invoice_id", invoice.ID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	return s.invoiceRepo.FindInvoicesByBusiness(ctx, businessID, listLimit)
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, businessID string) error {
	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID, businessID)
}
