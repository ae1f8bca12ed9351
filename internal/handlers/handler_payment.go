package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler serves payment endpoints.
type PaymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	userService    portssvc.UserSvcFacade
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(paymentService portssvc.PaymentSvcFacade, userService portssvc.UserSvcFacade) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, userService: userService}
}

// Create godoc
// @Summary Record a payment, optionally against an invoice
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment details"
// @Success 200 {object} domain.Payment
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
