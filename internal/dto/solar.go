package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSolarProjectRequest creates an installation project for a customer of
// the caller's business.
type CreateSolarProjectRequest struct {
	CustomerID       string          `json:"customer_id" binding:"required"`
	ProjectName      string          `json:"project_name" binding:"required"`
	SiteAddress      string          `json:"site_address" binding:"required"`
	SystemCapacityKW decimal.Decimal `json:"system_capacity_kw"`
	PanelType        string          `json:"panel_type"`
	PanelQuantity    int             `json:"panel_quantity"`
	InverterType     string          `json:"inverter_type"`
	InverterQuantity int             `json:"inverter_quantity"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
	SubsidyAmount    decimal.Decimal `json:"subsidy_amount"`
	DiscomName       string          `json:"discom_name"`
	ConsumerNumber   string          `json:"consumer_number"`
	StartDate        *time.Time      `json:"start_date"`
	Notes            *string         `json:"notes"`
}

// UpdateSolarProjectRequest partially updates a project; nil fields are left
// untouched.
type UpdateSolarProjectRequest struct {
	ProjectName        *string          `json:"project_name"`
	SiteAddress        *string          `json:"site_address"`
	SystemCapacityKW   *decimal.Decimal `json:"system_capacity_kw"`
	PanelType          *string          `json:"panel_type"`
	PanelQuantity      *int             `json:"panel_quantity"`
	InverterType       *string          `json:"inverter_type"`
	InverterQuantity   *int             `json:"inverter_quantity"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost"`
	ActualCost         *decimal.Decimal `json:"actual_cost"`
	SubsidyAmount      *decimal.Decimal `json:"subsidy_amount"`
	SubsidyStatus      *string          `json:"subsidy_status"`
	DiscomName         *string          `json:"discom_name"`
	ConsumerNumber     *string          `json:"consumer_number"`
	InstallationStatus *string          `json:"installation_status"`
	StartDate          *time.Time       `json:"start_date"`
	CompletionDate     *time.Time       `json:"completion_date"`
	Notes              *string          `json:"notes"`
}

// CreateMilestoneRequest creates a milestone under a project. The project id
// is caller-supplied and not verified.
type CreateMilestoneRequest struct {
	ProjectID     string          `json:"project_id" binding:"required"`
	MilestoneName string          `json:"milestone_name" binding:"required"`
	Description   *string         `json:"description"`
	DueDate       *time.Time      `json:"due_date"`
	Amount        decimal.Decimal `json:"amount"`
}

// CreateMaterialConsumptionRequest records stock drawn for a project.
type CreateMaterialConsumptionRequest struct {
	ProjectID       string          `json:"project_id" binding:"required"`
	ProductID       string          `json:"product_id" binding:"required"`
	QuantityUsed    decimal.Decimal `json:"quantity_used"`
	ConsumptionDate *time.Time      `json:"consumption_date"`
	Notes           *string         `json:"notes"`
}

// CreateGovernmentDocumentRequest tracks regulatory paperwork for a project.
type CreateGovernmentDocumentRequest struct {
	ProjectID      string     `json:"project_id" binding:"required"`
	DocumentType   string     `json:"document_type" binding:"required"`
	DocumentName   string     `json:"document_name" binding:"required"`
	DocumentNumber *string    `json:"document_number"`
	IssueDate      *time.Time `json:"issue_date"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	Status         string     `json:"status"`
	Notes          *string    `json:"notes"`
}

// CreateSubsidyRequest opens a subsidy application for a project.
type CreateSubsidyRequest struct {
	ProjectID         string          `json:"project_id" binding:"required"`
	SchemeName        string          `json:"scheme_name"`
	AppliedAmount     decimal.Decimal `json:"applied_amount"`
	ApplicationDate   *time.Time      `json:"application_date"`
	ApplicationNumber *string         `json:"application_number"`
	Remarks           *string         `json:"remarks"`
}
