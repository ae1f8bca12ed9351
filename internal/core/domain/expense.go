package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a money-out document. CategoryName and VendorName are snapshots
// taken at creation time and are not kept in sync with later renames.
type Expense struct {
	ID            string          `json:"id"`
	ExpenseNumber string          `json:"expense_number"`
	CategoryID    *string         `json:"category_id,omitempty"`
	CategoryName  *string         `json:"category_name,omitempty"`
	VendorID      *string         `json:"vendor_id,omitempty"`
	VendorName    *string         `json:"vendor_name,omitempty"`
	BusinessID    string          `json:"business_id"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Total         decimal.Decimal `json:"total"`
	ExpenseDate   time.Time       `json:"expense_date"`
	Description   *string         `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	ReceiptURL    *string         `json:"receipt_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ExpenseCategory is a user-defined grouping for expenses.
type ExpenseCategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	BusinessID string    `json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
}
