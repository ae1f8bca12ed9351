package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a party the business sells to.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	GSTIN          *string         `json:"gstin,omitempty"`
	Address        *string         `json:"address,omitempty"`
	BusinessID     string          `json:"business_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
}
