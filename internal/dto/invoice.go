package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one caller-supplied invoice line. Amount is validated
// against quantity*price-discount at creation.
type InvoiceItemRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateInvoiceRequest creates an invoice for a customer of the caller's business.
type CreateInvoiceRequest struct {
	CustomerID  string               `json:"customer_id" binding:"required"`
	InvoiceDate *time.Time           `json:"invoice_date"`
	DueDate     *time.Time           `json:"due_date"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,dive"`
	Discount    decimal.Decimal      `json:"discount"`
	Notes       *string              `json:"notes"`
}
