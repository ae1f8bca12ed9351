package services

import (
	"context"
	"testing"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestExpenseService(expenseRepo *MockExpenseRepository, categoryRepo *MockExpenseCategoryRepository, vendorRepo *MockVendorRepository) *expenseService {
	return NewExpenseService(expenseRepo, categoryRepo, vendorRepo).(*expenseService)
}

func TestCreateExpenseComputesTotal(t *testing.T) {
	expenseRepo := new(MockExpenseRepository)
	svc := newTestExpenseService(expenseRepo, new(MockExpenseCategoryRepository), new(MockVendorRepository))

	expenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("*domain.Expense")).
		Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.Expense)
			e.ExpenseNumber = "EXP-00001"
		}).Return(nil)

	expense, err := svc.CreateExpense(context.Background(), "b1", dto.CreateExpenseRequest{
		Amount:    dec("100"),
		TaxAmount: dec("18"),
	})

	require.NoError(t, err)
	assert.Equal(t, "EXP-00001", expense.ExpenseNumber)
	assert.True(t, expense.Total.Equal(dec("118")), "total %s", expense.Total)
	assert.Equal(t, defaultPaymentMethod, expense.PaymentMethod)
}

func TestCreateExpenseResolvesCategoryAndVendorNames(t *testing.T) {
	expenseRepo := new(MockExpenseRepository)
	categoryRepo := new(MockExpenseCategoryRepository)
	vendorRepo := new(MockVendorRepository)
	svc := newTestExpenseService(expenseRepo, categoryRepo, vendorRepo)

	categoryRepo.On("FindCategoryByID", mock.Anything, "cat1").Return(&domain.ExpenseCategory{ID: "cat1", Name: "Transport"}, nil)
	vendorRepo.On("FindVendorByID", mock.Anything, "v1").Return(&domain.Vendor{ID: "v1", Name: "FastFreight"}, nil)
	expenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil)

	catID, vendID := "cat1", "v1"
	expense, err := svc.CreateExpense(context.Background(), "b1", dto.CreateExpenseRequest{
		CategoryID: &catID,
		VendorID:   &vendID,
		Amount:     dec("50"),
	})

	require.NoError(t, err)
	require.NotNil(t, expense.CategoryName)
	assert.Equal(t, "Transport", *expense.CategoryName)
	require.NotNil(t, expense.VendorName)
	assert.Equal(t, "FastFreight", *expense.VendorName)
}

func TestCreateExpenseUnknownCategorySilentlySkipsName(t *testing.T) {
	expenseRepo := new(MockExpenseRepository)
	categoryRepo := new(MockExpenseCategoryRepository)
	svc := newTestExpenseService(expenseRepo, categoryRepo, new(MockVendorRepository))

	categoryRepo.On("FindCategoryByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	expenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil)

	catID := "ghost"
	expense, err := svc.CreateExpense(context.Background(), "b1", dto.CreateExpenseRequest{
		CategoryID: &catID,
		Amount:     dec("10"),
	})

	require.NoError(t, err)
	assert.Nil(t, expense.CategoryName)
	assert.Equal(t, &catID, expense.CategoryID)
}
