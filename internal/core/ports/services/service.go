package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Auth            AuthSvcFacade
	User            UserSvcFacade
	Business        BusinessSvcFacade
	Customer        CustomerSvcFacade
	Vendor          VendorSvcFacade
	Product         ProductSvcFacade
	ExpenseCategory ExpenseCategorySvcFacade
	Expense         ExpenseSvcFacade
	Invoice         InvoiceSvcFacade
	Payment         PaymentSvcFacade
	Solar           SolarSvcFacade
	Reporting       ReportingSvcFacade
}
