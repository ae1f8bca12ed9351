package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks how much of an invoice has been settled.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoiceItem is one line of an invoice. Amount is supplied by the caller and
// validated against quantity*price-discount at creation time.
type InvoiceItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a sale document. Subtotal, TaxAmount, Total, Balance and Status
// are derived at write time; only payment recording mutates them afterwards.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	BusinessID    string          `json:"business_id"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	Status        InvoiceStatus   `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ComputeInvoiceTotals derives subtotal, tax amount and total from the line
// items and a document-level discount:
//
//	subtotal = sum(item.amount)
//	tax      = sum(item.amount * item.tax_rate / 100)
//	total    = subtotal + tax - discount
func ComputeInvoiceTotals(items []InvoiceItem, discount decimal.Decimal) (subtotal, taxAmount, total decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
		taxAmount = taxAmount.Add(item.Amount.Mul(item.TaxRate).Div(hundred))
	}
	total = subtotal.Add(taxAmount).Sub(discount)
	return subtotal, taxAmount, total
}

// DeriveInvoiceStatus derives the settlement status from paid amount and balance.
func DeriveInvoiceStatus(paidAmount, balance decimal.Decimal) InvoiceStatus {
	switch {
	case balance.LessThanOrEqual(decimal.Zero):
		return InvoiceStatusPaid
	case paidAmount.GreaterThan(decimal.Zero):
		return InvoiceStatusPartial
	default:
		return InvoiceStatusUnpaid
	}
}

// ApplyPayment adds a payment amount to the invoice and recomputes the derived
// fields. Over-payment is representable as a negative balance with status paid.
func (inv *Invoice) ApplyPayment(amount decimal.Decimal) {
	inv.PaidAmount = inv.PaidAmount.Add(amount)
	inv.Balance = inv.Total.Sub(inv.PaidAmount)
	inv.Status = DeriveInvoiceStatus(inv.PaidAmount, inv.Balance)
}
