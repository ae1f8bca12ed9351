package repositories

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
)

// ExpenseCategoryRepository defines persistence operations for expense categories.
type ExpenseCategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	FindCategoriesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.ExpenseCategory, error)
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	// SaveExpense assigns the next sequential expense number for the business
	// and inserts the expense in a single transaction. The assigned number is
	// written back to the passed expense.
	SaveExpense(ctx context.Context, expense *domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	FindExpensesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, businessID string) error
}
