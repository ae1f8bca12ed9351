package services

import (
	"time"

	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, jwtSecret string, jwtExpiryDuration time.Duration, jwtIssuer string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:            NewAuthService(repos.UserRepo, jwtSecret, jwtExpiryDuration, jwtIssuer),
		User:            NewUserService(repos.UserRepo),
		Business:        NewBusinessService(repos.BusinessRepo, repos.UserRepo),
		Customer:        NewCustomerService(repos.CustomerRepo),
		Vendor:          NewVendorService(repos.VendorRepo),
		Product:         NewProductService(repos.ProductRepo),
		ExpenseCategory: NewExpenseCategoryService(repos.ExpenseCategoryRepo),
		Expense:         NewExpenseService(repos.ExpenseRepo, repos.ExpenseCategoryRepo, repos.VendorRepo),
		Invoice:         NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo),
		Payment:         NewPaymentService(repos.PaymentRepo),
		Solar:           NewSolarService(repos.SolarProjectRepo, repos.SolarChildRepo, repos.CustomerRepo, repos.ProductRepo),
		Reporting:       NewReportingService(repos.ReportingRepo),
	}
}
