package services

import (
	"context"
	"time"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetUserBusiness(ctx context.Context, userID string, businessID string) error {
	args := m.Called(ctx, userID, businessID)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomersByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Customer, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string, businessID string) error {
	args := m.Called(ctx, customerID, businessID)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, businessID string) error {
	args := m.Called(ctx, invoiceID, businessID)
	return args.Error(0)
}

type MockExpenseCategoryRepository struct {
	mock.Mock
}

func (m *MockExpenseCategoryRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockExpenseCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindCategoriesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Expense, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, businessID string) error {
	args := m.Called(ctx, expenseID, businessID)
	return args.Error(0)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindVendorsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Vendor, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) DeleteVendor(ctx context.Context, vendorID string, businessID string) error {
	args := m.Called(ctx, vendorID, businessID)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string, businessID string) error {
	args := m.Called(ctx, productID, businessID)
	return args.Error(0)
}

type MockSolarProjectRepository struct {
	mock.Mock
}

func (m *MockSolarProjectRepository) SaveProject(ctx context.Context, project *domain.SolarProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockSolarProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.SolarProject, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SolarProject), args.Error(1)
}

func (m *MockSolarProjectRepository) FindProjectsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.SolarProject, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SolarProject), args.Error(1)
}

func (m *MockSolarProjectRepository) UpdateProject(ctx context.Context, project domain.SolarProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockSolarProjectRepository) DeleteProject(ctx context.Context, projectID string, businessID string) error {
	args := m.Called(ctx, projectID, businessID)
	return args.Error(0)
}

type MockSolarChildRepository struct {
	mock.Mock
}

func (m *MockSolarChildRepository) SaveMilestone(ctx context.Context, milestone domain.ProjectMilestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockSolarChildRepository) FindMilestonesByProject(ctx context.Context, projectID string, limit int) ([]domain.ProjectMilestone, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectMilestone), args.Error(1)
}

func (m *MockSolarChildRepository) UpdateMilestoneStatus(ctx context.Context, milestoneID string, status string, completionDate *time.Time) error {
	args := m.Called(ctx, milestoneID, status, completionDate)
	return args.Error(0)
}

func (m *MockSolarChildRepository) SaveMaterialConsumption(ctx context.Context, consumption domain.MaterialConsumption) error {
	args := m.Called(ctx, consumption)
	return args.Error(0)
}

func (m *MockSolarChildRepository) FindMaterialsByProject(ctx context.Context, projectID string, limit int) ([]domain.MaterialConsumption, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialConsumption), args.Error(1)
}

func (m *MockSolarChildRepository) SaveDocument(ctx context.Context, document domain.GovernmentDocument) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockSolarChildRepository) FindDocumentsByProject(ctx context.Context, projectID string, limit int) ([]domain.GovernmentDocument, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GovernmentDocument), args.Error(1)
}

func (m *MockSolarChildRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status string) error {
	args := m.Called(ctx, documentID, status)
	return args.Error(0)
}

func (m *MockSolarChildRepository) SaveSubsidy(ctx context.Context, subsidy domain.SubsidyTracking) error {
	args := m.Called(ctx, subsidy)
	return args.Error(0)
}

func (m *MockSolarChildRepository) FindSubsidiesByProject(ctx context.Context, projectID string, limit int) ([]domain.SubsidyTracking, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubsidyTracking), args.Error(1)
}

func (m *MockSolarChildRepository) UpdateSubsidyStatus(ctx context.Context, subsidyID string, update portsrepo.SubsidyStatusUpdate) error {
	args := m.Called(ctx, subsidyID, update)
	return args.Error(0)
}

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumInvoiceTotals(ctx context.Context, businessID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumExpenseTotals(ctx context.Context, businessID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumOutstandingBalance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CountCustomers(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountInvoices(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountProducts(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) RecentInvoices(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockReportingRepository) RecentExpenses(ctx context.Context, businessID string, limit int) ([]domain.Expense, error) {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockReportingRepository) LowStockProducts(ctx context.Context, businessID string, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockReportingRepository) InvoicesByDate(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockReportingRepository) ExpensesByDate(ctx context.Context, businessID string, limit int) ([]domain.Expense, error) {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockReportingRepository) CountProjects(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) ProjectsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.SolarProject, error) {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]domain.SolarProject), args.Error(1)
}

func (m *MockReportingRepository) CountPendingSubsidies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
