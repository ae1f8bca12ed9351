package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseCategoryRequest creates an expense category.
type CreateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateExpenseRequest creates an expense. Category and vendor display names
// are resolved from the ids at creation time; unknown ids are silently omitted.
type CreateExpenseRequest struct {
	CategoryID    *string         `json:"category_id"`
	VendorID      *string         `json:"vendor_id"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	ExpenseDate   *time.Time      `json:"expense_date"`
	Description   *string         `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}
