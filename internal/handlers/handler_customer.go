package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// CustomerHandler serves customer CRUD endpoints.
type CustomerHandler struct {
	customerService portssvc.CustomerSvcFacade
	userService     portssvc.UserSvcFacade
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(customerService portssvc.CustomerSvcFacade, userService portssvc.UserSvcFacade) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, userService: userService}
}

// Create godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCustomerRequest true "Customer details"
// @Success 200 {object} domain.Customer
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// List godoc
// @Summary List customers of the caller's business
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Customer
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get godoc
// @Summary Get a customer by id
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Update godoc
// @Summary Update a customer of the caller's business
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body dto.CreateCustomerRequest true "Customer details"
// @Success 200 {object} domain.Customer
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete a customer of the caller's business
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.MessageResponse
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id"), businessID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Customer deleted"})
}
