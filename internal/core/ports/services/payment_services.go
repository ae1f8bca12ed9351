package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// PaymentSvcFacade records payments and reconciles linked invoices.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, businessID string, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error)
}
