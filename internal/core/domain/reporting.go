package domain

import "github.com/shopspring/decimal"

// DashboardStats is the read-side aggregation behind /dashboard/stats.
type DashboardStats struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Profit           decimal.Decimal `json:"profit"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	CustomersCount   int64           `json:"customers_count"`
	InvoicesCount    int64           `json:"invoices_count"`
	ProductsCount    int64           `json:"products_count"`
	RecentInvoices   []Invoice       `json:"recent_invoices"`
	RecentExpenses   []Expense       `json:"recent_expenses"`
	LowStockProducts []Product       `json:"low_stock_products"`
}

// SalesSummary totals a set of invoices.
type SalesSummary struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	InvoiceCount     int             `json:"invoice_count"`
}

// SalesReport lists invoices newest-first with their summary.
type SalesReport struct {
	Invoices []Invoice    `json:"invoices"`
	Summary  SalesSummary `json:"summary"`
}

// ExpenseSummary totals a set of expenses with a per-category breakdown.
// Expenses without a category are grouped under "Uncategorized".
type ExpenseSummary struct {
	TotalAmount       decimal.Decimal            `json:"total_amount"`
	ExpenseCount      int                        `json:"expense_count"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
}

// ExpenseReport lists expenses newest-first with their summary.
type ExpenseReport struct {
	Expenses []Expense      `json:"expenses"`
	Summary  ExpenseSummary `json:"summary"`
}

// SolarDashboard is the read-side aggregation behind /solar/dashboard.
type SolarDashboard struct {
	TotalProjects         int64           `json:"total_projects"`
	ProjectsByStatus      map[string]int  `json:"projects_by_status"`
	TotalCapacityKW       decimal.Decimal `json:"total_capacity_kw"`
	TotalEstimatedRevenue decimal.Decimal `json:"total_estimated_revenue"`
	TotalSubsidyAmount    decimal.Decimal `json:"total_subsidy_amount"`
	PendingSubsidiesCount int64           `json:"pending_subsidies_count"`
	RecentProjects        []SolarProject  `json:"recent_projects"`
}
