package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// ReportingSvcFacade serves the read-only aggregations.
type ReportingSvcFacade interface {
	DashboardStats(ctx context.Context, businessID string) (*domain.DashboardStats, error)
	SalesReport(ctx context.Context, businessID string) (*domain.SalesReport, error)
	ExpenseReport(ctx context.Context, businessID string) (*domain.ExpenseReport, error)
	SolarDashboard(ctx context.Context, businessID string) (*domain.SolarDashboard, error)
}
