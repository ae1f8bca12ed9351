package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest creates or fully replaces a customer.
type CreateCustomerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          *string         `json:"email" binding:"omitempty,email"`
	Phone          *string         `json:"phone"`
	GSTIN          *string         `json:"gstin"`
	Address        *string         `json:"address"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}
