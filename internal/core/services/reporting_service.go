package services

import (
	"context"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	recentLimit = 5
	reportLimit = 1000
)

// uncategorizedBucket groups expenses without a category in the breakdown.
const uncategorizedBucket = "Uncategorized"

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a ReportingSvcFacade.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

func (s *reportingService) DashboardStats(ctx context.Context, businessID string) (*domain.DashboardStats, error) {
	totalSales, err := s.reportingRepo.SumInvoiceTotals(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total sales: %w", err)
	}
	totalExpenses, err := s.reportingRepo.SumExpenseTotals(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total expenses: %w", err)
	}
	totalOutstanding, err := s.reportingRepo.SumOutstandingBalance(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute outstanding balance: %w", err)
	}
	customersCount, err := s.reportingRepo.CountCustomers(ctx, businessID)
	if err != nil {
		return nil, err
	}
	invoicesCount, err := s.reportingRepo.CountInvoices(ctx, businessID)
	if err != nil {
		return nil, err
	}
	productsCount, err := s.reportingRepo.CountProducts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	recentInvoices, err := s.reportingRepo.RecentInvoices(ctx, businessID, recentLimit)
	if err != nil {
		return nil, err
	}
	recentExpenses, err := s.reportingRepo.RecentExpenses(ctx, businessID, recentLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.reportingRepo.LowStockProducts(ctx, businessID, recentLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalSales:       totalSales,
		TotalExpenses:    totalExpenses,
		Profit:           totalSales.Sub(totalExpenses),
		TotalOutstanding: totalOutstanding,
		CustomersCount:   customersCount,
		InvoicesCount:    invoicesCount,
		ProductsCount:    productsCount,
		RecentInvoices:   recentInvoices,
		RecentExpenses:   recentExpenses,
		LowStockProducts: lowStock,
	}, nil
}

func (s *reportingService) SalesReport(ctx context.Context, businessID string) (*domain.SalesReport, error) {
	invoices, err := s.reportingRepo.InvoicesByDate(ctx, businessID, reportLimit)
	if err != nil {
		return nil, err
	}

	summary := domain.SalesSummary{InvoiceCount: len(invoices)}
	for _, inv := range invoices {
		summary.TotalSales = summary.TotalSales.Add(inv.Total)
		summary.TotalTax = summary.TotalTax.Add(inv.TaxAmount)
		summary.TotalPaid = summary.TotalPaid.Add(inv.PaidAmount)
		summary.TotalOutstanding = summary.TotalOutstanding.Add(inv.Balance)
	}

	return &domain.SalesReport{Invoices: invoices, Summary: summary}, nil
}

func (s *reportingService) ExpenseReport(ctx context.Context, businessID string) (*domain.ExpenseReport, error) {
	expenses, err := s.reportingRepo.ExpensesByDate(ctx, businessID, reportLimit)
	if err != nil {
		return nil, err
	}

	summary := domain.ExpenseSummary{
		ExpenseCount:      len(expenses),
		CategoryBreakdown: map[string]decimal.Decimal{},
	}
	for _, e := range expenses {
		summary.TotalAmount = summary.TotalAmount.Add(e.Total)
		bucket := uncategorizedBucket
		if e.CategoryName != nil && *e.CategoryName != "" {
			bucket = *e.CategoryName
		}
		summary.CategoryBreakdown[bucket] = summary.CategoryBreakdown[bucket].Add(e.Total)
	}

	return &domain.ExpenseReport{Expenses: expenses, Summary: summary}, nil
}

func (s *reportingService) SolarDashboard(ctx context.Context, businessID string) (*domain.SolarDashboard, error) {
	totalProjects, err := s.reportingRepo.CountProjects(ctx, businessID)
	if err != nil {
		return nil, err
	}
	projects, err := s.reportingRepo.ProjectsByBusiness(ctx, businessID, reportLimit)
	if err != nil {
		return nil, err
	}
	pendingSubsidies, err := s.reportingRepo.CountPendingSubsidies(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.SolarDashboard{
		TotalProjects:         totalProjects,
		ProjectsByStatus:      map[string]int{},
		PendingSubsidiesCount: pendingSubsidies,
	}
	for _, p := range projects {
		dashboard.ProjectsByStatus[p.InstallationStatus]++
		dashboard.TotalCapacityKW = dashboard.TotalCapacityKW.Add(p.SystemCapacityKW)
		dashboard.TotalEstimatedRevenue = dashboard.TotalEstimatedRevenue.Add(p.EstimatedCost)
		dashboard.TotalSubsidyAmount = dashboard.TotalSubsidyAmount.Add(p.SubsidyAmount)
	}
	if len(projects) > recentLimit {
		dashboard.RecentProjects = projects[:recentLimit]
	} else {
		dashboard.RecentProjects = projects
	}

	return dashboard, nil
}
