package dto

import "github.com/shopspring/decimal"

// CreateProductRequest creates or fully replaces a product. Unit defaults to
// "pcs", TaxRate to 18 and LowStockAlert to 10 when omitted.
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   *string          `json:"description"`
	SKU           *string          `json:"sku"`
	HSNCode       *string          `json:"hsn_code"`
	Unit          string           `json:"unit"`
	Price         decimal.Decimal  `json:"price"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	StockQuantity decimal.Decimal  `json:"stock_quantity"`
	LowStockAlert *decimal.Decimal `json:"low_stock_alert"`
}
