package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	// SavePayment runs in one transaction: assigns the next sequential payment
	// number, inserts the payment, and, when the payment references an
	// existing invoice, recomputes that invoice's paid amount, balance and
	// status. A dangling invoice reference is not an error; the payment is
	// recorded and no invoice is touched.
	SavePayment(ctx context.Context, payment *domain.Payment) error
	FindPaymentsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Payment, error)
}
