package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received, optionally against one invoice. Applying a
// payment is the only write path that mutates invoice derived fields after
// invoice creation.
type Payment struct {
	ID            string          `json:"id"`
	PaymentNumber string          `json:"payment_number"`
	InvoiceID     *string         `json:"invoice_id,omitempty"`
	CustomerID    *string         `json:"customer_id,omitempty"`
	BusinessID    string          `json:"business_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Reference     *string         `json:"reference,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
