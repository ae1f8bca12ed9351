package services

import (
	"context"
	"testing"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateInvoiceDerivesTotals(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	svc := NewInvoiceService(invoiceRepo, customerRepo)

	customerRepo.On("FindCustomerByID", mock.Anything, "c1").Return(&domain.Customer{
		ID: "c1", Name: "Acme Traders", BusinessID: "b1",
	}, nil)

	invoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("*domain.Invoice")).
		Run(func(args mock.Arguments) {
			inv := args.Get(1).(*domain.Invoice)
			inv.InvoiceNumber = "INV-00001"
		}).Return(nil)

	// Two lines: 2 x 50 @ 12% and 1 x 50 @ 12%, no discounts.
	req := dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", ProductName: "Panel", Quantity: dec("2"), Price: dec("50"), TaxRate: dec("12"), Amount: dec("100")},
			{ProductID: "p2", ProductName: "Cable", Quantity: dec("1"), Price: dec("50"), TaxRate: dec("24"), Amount: dec("50")},
		},
	}

	inv, err := svc.CreateInvoice(context.Background(), "b1", req)
	require.NoError(t, err)

	assert.Equal(t, "INV-00001", inv.InvoiceNumber)
	assert.Equal(t, "Acme Traders", inv.CustomerName)
	assert.True(t, inv.Subtotal.Equal(dec("150")), "subtotal %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(dec("24")), "tax %s", inv.TaxAmount)
	assert.True(t, inv.Total.Equal(dec("174")), "total %s", inv.Total)
	assert.True(t, inv.Balance.Equal(inv.Total))
	assert.True(t, inv.PaidAmount.IsZero())
	assert.Equal(t, domain.InvoiceStatusUnpaid, inv.Status)
}

func TestCreateInvoiceRejectsMismatchedAmount(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	svc := NewInvoiceService(invoiceRepo, customerRepo)

	customerRepo.On("FindCustomerByID", mock.Anything, "c1").Return(&domain.Customer{ID: "c1", Name: "Acme"}, nil)

	req := dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			// 2*50 = 100 but amount claims 120.
			{ProductID: "p1", Quantity: dec("2"), Price: dec("50"), Amount: dec("120")},
		},
	}

	_, err := svc.CreateInvoice(context.Background(), "b1", req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	invoiceRepo.AssertNotCalled(t, "SaveInvoice", mock.Anything, mock.Anything)
}

func TestCreateInvoiceAcceptsRoundingDrift(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	svc := NewInvoiceService(invoiceRepo, customerRepo)

	customerRepo.On("FindCustomerByID", mock.Anything, "c1").Return(&domain.Customer{ID: "c1", Name: "Acme"}, nil)
	invoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	// 3*33.33 = 99.99; a rounded 100.00 sits within the tolerance.
	req := dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: dec("3"), Price: dec("33.33"), Amount: dec("100.00")},
		},
	}

	_, err := svc.CreateInvoice(context.Background(), "b1", req)
	assert.NoError(t, err)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	svc := NewInvoiceService(invoiceRepo, customerRepo)

	customerRepo.On("FindCustomerByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateInvoice(context.Background(), "b1", dto.CreateInvoiceRequest{CustomerID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
