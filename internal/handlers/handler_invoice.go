package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves invoice endpoints.
type InvoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	userService    portssvc.UserSvcFacade
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade, userService portssvc.UserSvcFacade) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, userService: userService}
}

// Create godoc
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInvoiceRequest true "Invoice details"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} ErrorResponse "Item amount mismatch"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id"), businessID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Invoice deleted"})
}
