package services

import (
	"context"
	"errors"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultPaymentMethod = "cash"

type expenseCategoryService struct {
	categoryRepo portsrepo.ExpenseCategoryRepository
}

// NewExpenseCategoryService creates an ExpenseCategorySvcFacade.
func NewExpenseCategoryService(categoryRepo portsrepo.ExpenseCategoryRepository) portssvc.ExpenseCategorySvcFacade {
	return &expenseCategoryService{categoryRepo: categoryRepo}
}

func (s *expenseCategoryService) CreateCategory(ctx context.Context, businessID string, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error) {
	category := domain.ExpenseCategory{
		ID:         uuid.NewString(),
		Name:       req.Name,
		BusinessID: businessID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *expenseCategoryService) ListCategories(ctx context.Context, businessID string) ([]domain.ExpenseCategory, error) {
	return s.categoryRepo.FindCategoriesByBusiness(ctx, businessID, listLimit)
}

type expenseService struct {
	expenseRepo  portsrepo.ExpenseRepository
	categoryRepo portsrepo.ExpenseCategoryRepository
	vendorRepo   portsrepo.VendorRepository
}

// NewExpenseService creates an ExpenseSvcFacade.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, categoryRepo portsrepo.ExpenseCategoryRepository, vendorRepo portsrepo.VendorRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, categoryRepo: categoryRepo, vendorRepo: vendorRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense := domain.Expense{
		ID:            uuid.NewString(),
		CategoryID:    req.CategoryID,
		VendorID:      req.VendorID,
		BusinessID:    businessID,
		Amount:        req.Amount,
		TaxAmount:     req.TaxAmount,
		Total:         req.Amount.Add(req.TaxAmount),
		ExpenseDate:   time.Now().UTC(),
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = defaultPaymentMethod
	}

	// Display names are snapshots; an unknown id leaves the name empty rather
	// than failing the expense.
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err == nil {
			expense.CategoryName = &category.Name
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}
	if req.VendorID != nil {
		vendor, err := s.vendorRepo.FindVendorByID(ctx, *req.VendorID)
		if err == nil {
			expense.VendorName = &vendor.Name
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	if err := s.expenseRepo.SaveExpense(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	return s.expenseRepo.FindExpensesByBusiness(ctx, businessID, listLimit)
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, businessID string) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID, businessID)
}
