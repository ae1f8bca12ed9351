package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a payment, optionally against one invoice.
type CreatePaymentRequest struct {
	InvoiceID     *string         `json:"invoice_id"`
	CustomerID    *string         `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time      `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
}
