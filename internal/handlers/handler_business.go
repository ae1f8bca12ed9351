package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// BusinessHandler serves business CRU endpoints.
type BusinessHandler struct {
	businessService portssvc.BusinessSvcFacade
	userService     portssvc.UserSvcFacade
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(businessService portssvc.BusinessSvcFacade, userService portssvc.UserSvcFacade) *BusinessHandler {
	return &BusinessHandler{businessService: businessService, userService: userService}
}

// Create godoc
// @Summary Create a business
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBusinessRequest true "Business details"
// @Success 200 {object} domain.Business
// @Router /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), *user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

// List godoc
// @Summary List businesses owned by the caller
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Business
// @Router /businesses [get]
func (h *BusinessHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// Get godoc
// @Summary Get a business by id
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} domain.Business
// @Router /businesses/{id} [get]
func (h *BusinessHandler) Get(c *gin.Context) {
	business, err := h.businessService.GetBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

// Update godoc
// @Summary Update a business owned by the caller
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body dto.CreateBusinessRequest true "Business details"
// @Success 200 {object} domain.Business
// @Router /businesses/{id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), c.Param("id"), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}
