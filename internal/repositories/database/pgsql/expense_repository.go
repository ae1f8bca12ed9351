package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseCategoryRepository struct {
	BaseRepository
}

func newPgxExpenseCategoryRepository(db *pgxpool.Pool) portsrepo.ExpenseCategoryRepository {
	return &PgxExpenseCategoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseCategoryRepository = (*PgxExpenseCategoryRepository)(nil)

func (r *PgxExpenseCategoryRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := `
        INSERT INTO expense_categories (id, name, business_id, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.Pool.Exec(ctx, query, category.ID, category.Name, category.BusinessID, category.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save expense category: %w", err)
	}
	return nil
}

func (r *PgxExpenseCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := `SELECT id, name, business_id, created_at FROM expense_categories WHERE id = $1;`
	var category domain.ExpenseCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&category.ID, &category.Name, &category.BusinessID, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense category by ID %s: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxExpenseCategoryRepository) FindCategoriesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.ExpenseCategory, error) {
	query := `SELECT id, name, business_id, created_at FROM expense_categories WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories for business %s: %w", businessID, err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var category domain.ExpenseCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.BusinessID, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense category row: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseColumns = `id, expense_number, category_id, category_name, vendor_id, vendor_name, business_id, amount, tax_amount, total, expense_date, description, payment_method, receipt_url, created_at`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ID,
		&e.ExpenseNumber,
		&e.CategoryID,
		&e.CategoryName,
		&e.VendorID,
		&e.VendorName,
		&e.BusinessID,
		&e.Amount,
		&e.TaxAmount,
		&e.Total,
		&e.ExpenseDate,
		&e.Description,
		&e.PaymentMethod,
		&e.ReceiptURL,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense *domain.Expense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	number, err := nextSequenceNumber(ctx, tx, expense.BusinessID, domain.SequenceExpense)
	if err != nil {
		return err
	}
	expense.ExpenseNumber = number

	query := `
        INSERT INTO expenses (id, expense_number, category_id, category_name, vendor_id, vendor_name, business_id, amount, tax_amount, total, expense_date, description, payment_method, receipt_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err = tx.Exec(ctx, query,
		expense.ID,
		expense.ExpenseNumber,
		expense.CategoryID,
		expense.CategoryName,
		expense.VendorID,
		expense.VendorName,
		expense.BusinessID,
		expense.Amount,
		expense.TaxAmount,
		expense.Total,
		expense.ExpenseDate,
		expense.Description,
		expense.PaymentMethod,
		expense.ReceiptURL,
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit expense transaction: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1;`
	expense, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	return expense, nil
}

func (r *PgxExpenseRepository) FindExpensesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 ORDER BY expense_date DESC LIMIT $2;`
	return r.listExpenses(ctx, query, businessID, limit)
}

func (r *PgxExpenseRepository) listExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, businessID string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND business_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, expenseID, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
