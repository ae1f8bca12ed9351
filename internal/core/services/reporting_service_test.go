package services

import (
	"context"
	"testing"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDashboardStatsComputesProfit(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := NewReportingService(repo)

	repo.On("SumInvoiceTotals", mock.Anything, "b1").Return(dec("1000"), nil)
	repo.On("SumExpenseTotals", mock.Anything, "b1").Return(dec("400"), nil)
	repo.On("SumOutstandingBalance", mock.Anything, "b1").Return(dec("250"), nil)
	repo.On("CountCustomers", mock.Anything, "b1").Return(int64(3), nil)
	repo.On("CountInvoices", mock.Anything, "b1").Return(int64(7), nil)
	repo.On("CountProducts", mock.Anything, "b1").Return(int64(12), nil)
	repo.On("RecentInvoices", mock.Anything, "b1", recentLimit).Return([]domain.Invoice{}, nil)
	repo.On("RecentExpenses", mock.Anything, "b1", recentLimit).Return([]domain.Expense{}, nil)
	repo.On("LowStockProducts", mock.Anything, "b1", recentLimit).Return([]domain.Product{}, nil)

	stats, err := svc.DashboardStats(context.Background(), "b1")
	require.NoError(t, err)

	assert.True(t, stats.Profit.Equal(dec("600")), "profit %s", stats.Profit)
	assert.True(t, stats.TotalOutstanding.Equal(dec("250")))
	assert.Equal(t, int64(3), stats.CustomersCount)
	assert.Equal(t, int64(7), stats.InvoicesCount)
}

func TestSalesReportSummary(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := NewReportingService(repo)

	invoices := []domain.Invoice{
		{Total: dec("174"), TaxAmount: dec("24"), PaidAmount: dec("100"), Balance: dec("74")},
		{Total: dec("50"), TaxAmount: dec("0"), PaidAmount: dec("50"), Balance: dec("0")},
	}
	repo.On("InvoicesByDate", mock.Anything, "b1", reportLimit).Return(invoices, nil)

	report, err := svc.SalesReport(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.InvoiceCount)
	assert.True(t, report.Summary.TotalSales.Equal(dec("224")))
	assert.True(t, report.Summary.TotalTax.Equal(dec("24")))
	assert.True(t, report.Summary.TotalPaid.Equal(dec("150")))
	assert.True(t, report.Summary.TotalOutstanding.Equal(dec("74")))
}

func TestExpenseReportCategoryBreakdown(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := NewReportingService(repo)

	expenses := []domain.Expense{
		{Total: dec("100"), CategoryName: strPtr("Travel")},
		{Total: dec("60"), CategoryName: strPtr("Travel")},
		{Total: dec("40")},
	}
	repo.On("ExpensesByDate", mock.Anything, "b1", reportLimit).Return(expenses, nil)

	report, err := svc.ExpenseReport(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.ExpenseCount)
	assert.True(t, report.Summary.TotalAmount.Equal(dec("200")))
	assert.True(t, report.Summary.CategoryBreakdown["Travel"].Equal(dec("160")))
	assert.True(t, report.Summary.CategoryBreakdown["Uncategorized"].Equal(dec("40")))
}

func TestSolarDashboardAggregates(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := NewReportingService(repo)

	projects := []domain.SolarProject{
		{InstallationStatus: domain.InstallationPlanning, SystemCapacityKW: dec("5"), EstimatedCost: dec("300000"), SubsidyAmount: dec("78000")},
		{InstallationStatus: domain.InstallationPlanning, SystemCapacityKW: dec("3"), EstimatedCost: dec("180000"), SubsidyAmount: dec("40000")},
		{InstallationStatus: domain.InstallationCompleted, SystemCapacityKW: dec("10"), EstimatedCost: dec("550000"), SubsidyAmount: dec("0")},
	}
	repo.On("CountProjects", mock.Anything, "b1").Return(int64(3), nil)
	repo.On("ProjectsByBusiness", mock.Anything, "b1", reportLimit).Return(projects, nil)
	repo.On("CountPendingSubsidies", mock.Anything).Return(int64(2), nil)

	dashboard, err := svc.SolarDashboard(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, int64(3), dashboard.TotalProjects)
	assert.Equal(t, 2, dashboard.ProjectsByStatus[domain.InstallationPlanning])
	assert.Equal(t, 1, dashboard.ProjectsByStatus[domain.InstallationCompleted])
	assert.True(t, dashboard.TotalCapacityKW.Equal(dec("18")))
	assert.True(t, dashboard.TotalEstimatedRevenue.Equal(dec("1030000")))
	assert.True(t, dashboard.TotalSubsidyAmount.Equal(dec("118000")))
	assert.Equal(t, int64(2), dashboard.PendingSubsidiesCount)
	assert.Len(t, dashboard.RecentProjects, 3)
}
