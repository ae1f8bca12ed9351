package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business is a tenant: the unit of data isolation. Every other record except
// User carries a reference to exactly one Business.
type Business struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	GSTIN         *string         `json:"gstin,omitempty"`
	Address       *string         `json:"address,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	Email         *string         `json:"email,omitempty"`
	OwnerID       string          `json:"owner_id"`
	FinancialYear string          `json:"financial_year"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	CreatedAt     time.Time       `json:"created_at"`
}
