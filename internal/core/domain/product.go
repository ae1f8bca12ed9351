package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item with tracked stock. StockQuantity is mutated only
// by invoice creation and material consumption (or a full overwrite via the
// update endpoint) and is allowed to go negative.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	SKU           *string         `json:"sku,omitempty"`
	HSNCode       *string         `json:"hsn_code,omitempty"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	BusinessID    string          `json:"business_id"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	LowStockAlert decimal.Decimal `json:"low_stock_alert"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsLowStock reports whether the product is at or below its alert threshold.
func (p Product) IsLowStock() bool {
	return p.StockQuantity.LessThanOrEqual(p.LowStockAlert)
}
