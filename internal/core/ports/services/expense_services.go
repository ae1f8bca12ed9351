package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
)

// ExpenseCategorySvcFacade manages expense categories of one business.
type ExpenseCategorySvcFacade interface {
	CreateCategory(ctx context.Context, businessID string, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context, businessID string) ([]domain.ExpenseCategory, error)
}

// ExpenseSvcFacade manages expenses of one business.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error)
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, businessID string) error
}
