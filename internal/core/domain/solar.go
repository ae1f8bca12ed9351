package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installation and subsidy statuses are advisory strings; the server does not
// enforce a transition state machine, matching the recorded behaviour of the
// milestone/document/subsidy status endpoints.
const (
	InstallationPlanning   = "planning"
	InstallationInProgress = "in_progress"
	InstallationCompleted  = "completed"
	InstallationOnHold     = "on_hold"

	SubsidyPending  = "pending"
	SubsidyApplied  = "applied"
	SubsidyApproved = "approved"
	SubsidyReceived = "received"
	SubsidyRejected = "rejected"

	MilestonePending    = "pending"
	MilestoneInProgress = "in_progress"
	MilestoneCompleted  = "completed"
)

// SolarProject is an installation project for one customer. CustomerName is a
// snapshot taken at creation time.
type SolarProject struct {
	ID                 string          `json:"id"`
	ProjectNumber      string          `json:"project_number"`
	CustomerID         string          `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	BusinessID         string          `json:"business_id"`
	ProjectName        string          `json:"project_name"`
	SiteAddress        string          `json:"site_address"`
	SystemCapacityKW   decimal.Decimal `json:"system_capacity_kw"`
	PanelType          string          `json:"panel_type"`
	PanelQuantity      int             `json:"panel_quantity"`
	InverterType       string          `json:"inverter_type"`
	InverterQuantity   int             `json:"inverter_quantity"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`
	ActualCost         decimal.Decimal `json:"actual_cost"`
	SubsidyAmount      decimal.Decimal `json:"subsidy_amount"`
	SubsidyStatus      string          `json:"subsidy_status"`
	DiscomName         string          `json:"discom_name"`
	ConsumerNumber     string          `json:"consumer_number"`
	InstallationStatus string          `json:"installation_status"`
	StartDate          *time.Time      `json:"start_date,omitempty"`
	CompletionDate     *time.Time      `json:"completion_date,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ProjectMilestone is a child record of a SolarProject.
type ProjectMilestone struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	MilestoneName  string          `json:"milestone_name"`
	Description    *string         `json:"description,omitempty"`
	Status         string          `json:"status"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MaterialConsumption records stock drawn from inventory for a project.
// ProductName is a snapshot taken at creation time.
type MaterialConsumption struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	QuantityUsed    decimal.Decimal `json:"quantity_used"`
	ConsumptionDate time.Time       `json:"consumption_date"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GovernmentDocument tracks regulatory paperwork for a project.
type GovernmentDocument struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"project_id"`
	DocumentType   string     `json:"document_type"`
	DocumentName   string     `json:"document_name"`
	DocumentURL    *string    `json:"document_url,omitempty"`
	DocumentNumber *string    `json:"document_number,omitempty"`
	IssueDate      *time.Time `json:"issue_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	Status         string     `json:"status"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SubsidyTracking follows a subsidy application for a project.
type SubsidyTracking struct {
	ID                string          `json:"id"`
	ProjectID         string          `json:"project_id"`
	SchemeName        string          `json:"scheme_name"`
	AppliedAmount     decimal.Decimal `json:"applied_amount"`
	ApprovedAmount    decimal.Decimal `json:"approved_amount"`
	ReceivedAmount    decimal.Decimal `json:"received_amount"`
	ApplicationDate   *time.Time      `json:"application_date,omitempty"`
	ApprovalDate      *time.Time      `json:"approval_date,omitempty"`
	ReceivedDate      *time.Time      `json:"received_date,omitempty"`
	ApplicationNumber *string         `json:"application_number,omitempty"`
	Status            string          `json:"status"`
	Remarks           *string         `json:"remarks,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
