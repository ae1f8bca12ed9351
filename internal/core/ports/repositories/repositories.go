package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo            UserRepository
	BusinessRepo        BusinessRepository
	CustomerRepo        CustomerRepository
	VendorRepo          VendorRepository
	ProductRepo         ProductRepository
	ExpenseCategoryRepo ExpenseCategoryRepository
	ExpenseRepo         ExpenseRepository
	InvoiceRepo         InvoiceRepository
	PaymentRepo         PaymentRepository
	SolarProjectRepo    SolarProjectRepository
	SolarChildRepo      SolarChildRepository
	ReportingRepo       ReportingRepository
}
