package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves product CRUD endpoints.
type ProductHandler struct {
	productService portssvc.ProductSvcFacade
	userService    portssvc.UserSvcFacade
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(productService portssvc.ProductSvcFacade, userService portssvc.UserSvcFacade) *ProductHandler {
	return &ProductHandler{productService: productService, userService: userService}
}

func (h *ProductHandler) Create(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id"), businessID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}
