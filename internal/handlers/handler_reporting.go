package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ReportingHandler serves the dashboard and report endpoints.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	userService      portssvc.UserSvcFacade
}

// NewReportingHandler creates a ReportingHandler.
func NewReportingHandler(reportingService portssvc.ReportingSvcFacade, userService portssvc.UserSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService, userService: userService}
}

// DashboardStats godoc
// @Summary Business dashboard aggregates
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *ReportingHandler) DashboardStats(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportingHandler) SalesReport(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	report, err := h.reportingService.SalesReport(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportingHandler) ExpenseReport(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	report, err := h.reportingService.ExpenseReport(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportingHandler) SolarDashboard(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	dashboard, err := h.reportingService.SolarDashboard(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
