package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves expense-category and expense endpoints.
type ExpenseHandler struct {
	categoryService portssvc.ExpenseCategorySvcFacade
	expenseService  portssvc.ExpenseSvcFacade
	userService     portssvc.UserSvcFacade
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(categoryService portssvc.ExpenseCategorySvcFacade, expenseService portssvc.ExpenseSvcFacade, userService portssvc.UserSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{categoryService: categoryService, expenseService: expenseService, userService: userService}
}

func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExpenseRequest true "Expense details"
// @Success 200 {object} domain.Expense
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id"), businessID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}
