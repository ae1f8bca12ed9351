package dto

import "github.com/shopspring/decimal"

// CreateBusinessRequest creates or fully replaces a business. TaxRate defaults
// to 18 (the common GST rate) when omitted.
type CreateBusinessRequest struct {
	Name    string           `json:"name" binding:"required"`
	GSTIN   *string          `json:"gstin"`
	Address *string          `json:"address"`
	Phone   *string          `json:"phone"`
	Email   *string          `json:"email" binding:"omitempty,email"`
	TaxRate *decimal.Decimal `json:"tax_rate"`
}
