package handlers

import (
	"net/http"

	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SolarHandler serves the solar project subsystem: projects, milestones,
// material consumption, government documents and subsidy tracking.
type SolarHandler struct {
	solarService portssvc.SolarSvcFacade
	userService  portssvc.UserSvcFacade
}

// NewSolarHandler creates a SolarHandler.
func NewSolarHandler(solarService portssvc.SolarSvcFacade, userService portssvc.UserSvcFacade) *SolarHandler {
	return &SolarHandler{solarService: solarService, userService: userService}
}

// CreateProject godoc
// @Summary Create a solar installation project
// @Tags solar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSolarProjectRequest true "Project details"
// @Success 200 {object} domain.SolarProject
// @Router /solar/projects [post]
func (h *SolarHandler) CreateProject(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateSolarProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.solarService.CreateProject(c.Request.Context(), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *SolarHandler) ListProjects(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	projects, err := h.solarService.ListProjects(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *SolarHandler) GetProject(c *gin.Context) {
	project, err := h.solarService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *SolarHandler) UpdateProject(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	var req dto.UpdateSolarProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.solarService.UpdateProject(c.Request.Context(), c.Param("id"), businessID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *SolarHandler) DeleteProject(c *gin.Context) {
	businessID, ok := currentBusinessID(c, h.userService)
	if !ok {
		return
	}

	if err := h.solarService.DeleteProject(c.Request.Context(), c.Param("id"), businessID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted"})
}

func (h *SolarHandler) CreateMilestone(c *gin.Context) {
	if _, ok := currentBusinessID(c, h.userService); !ok {
		return
	}

	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	milestone, err := h.solarService.CreateMilestone(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func (h *SolarHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.solarService.ListMilestones(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

// UpdateMilestoneStatus godoc
// @Summary Set a milestone's status
// @Tags solar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Milestone ID"
// @Param status query string true "New status"
// @Success 200 {object} dto.MessageResponse
// @Router /solar/milestones/{id}/status [put]
func (h *SolarHandler) UpdateMilestoneStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status query parameter required"})
		return
	}

	if err := h.solarService.UpdateMilestoneStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Milestone status updated"})
}

func (h *SolarHandler) CreateMaterialConsumption(c *gin.Context) {
	if _, ok := currentBusinessID(c, h.userService); !ok {
		return
	}

	var req dto.CreateMaterialConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	consumption, err := h.solarService.CreateMaterialConsumption(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consumption)
}

func (h *SolarHandler) ListMaterials(c *gin.Context) {
	materials, err := h.solarService.ListMaterials(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *SolarHandler) CreateDocument(c *gin.Context) {
	if _, ok := currentBusinessID(c, h.userService); !ok {
		return
	}

	var req dto.CreateGovernmentDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	document, err := h.solarService.CreateDocument(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func (h *SolarHandler) ListDocuments(c *gin.Context) {
	documents, err := h.solarService.ListDocuments(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

func (h *SolarHandler) UpdateDocumentStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status query parameter required"})
		return
	}

	if err := h.solarService.UpdateDocumentStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Document status updated"})
}

func (h *SolarHandler) CreateSubsidy(c *gin.Context) {
	if _, ok := currentBusinessID(c, h.userService); !ok {
		return
	}

	var req dto.CreateSubsidyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subsidy, err := h.solarService.CreateSubsidy(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subsidy)
}

func (h *SolarHandler) ListSubsidies(c *gin.Context) {
	subsidies, err := h.solarService.ListSubsidies(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subsidies)
}

// UpdateSubsidyStatus godoc
// @Summary Set a subsidy record's status
// @Tags solar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subsidy ID"
// @Param status query string true "New status"
// @Param approved_amount query string false "Approved amount, written when status=approved"
// @Param received_amount query string false "Received amount, written when status=received"
// @Success 200 {object} dto.MessageResponse
// @Router /solar/subsidies/{id}/status [put]
func (h *SolarHandler) UpdateSubsidyStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status query parameter required"})
		return
	}

	approvedAmount, ok := optionalDecimalQuery(c, "approved_amount")
	if !ok {
		return
	}
	receivedAmount, ok := optionalDecimalQuery(c, "received_amount")
	if !ok {
		return
	}

	if err := h.solarService.UpdateSubsidyStatus(c.Request.Context(), c.Param("id"), status, approvedAmount, receivedAmount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subsidy status updated"})
}

// optionalDecimalQuery parses an optional decimal query parameter. On a parse
// failure it writes a 400 response and reports false.
func optionalDecimalQuery(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &d, true
}
