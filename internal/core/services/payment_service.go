package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/billbook-app/billbook_backend/internal/middleware"
	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo portsrepo.PaymentRepository
}

// NewPaymentService creates a PaymentSvcFacade.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) CreatePayment(ctx context.Context, businessID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment := domain.Payment{
		ID:            uuid.NewString(),
		InvoiceID:     req.InvoiceID,
		CustomerID:    req.CustomerID,
		BusinessID:    businessID,
		Amount:        req.Amount,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = defaultPaymentMethod
	}

	if err := s.paymentRepo.SavePayment(ctx, &payment); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.ID),
		slog.String("payment_number", payment.PaymentNumber))
	return &payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	return s.paymentRepo.FindPaymentsByBusiness(ctx, businessID, listLimit)
}
