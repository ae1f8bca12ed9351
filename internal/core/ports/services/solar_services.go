package services

import (
	"context"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// SolarSvcFacade manages solar projects and their child records. Child records
// are keyed by caller-supplied project ids with no ownership verification.
type SolarSvcFacade interface {
	CreateProject(ctx context.Context, businessID string, req dto.CreateSolarProjectRequest) (*domain.SolarProject, error)
	ListProjects(ctx context.Context, businessID string) ([]domain.SolarProject, error)
	GetProject(ctx context.Context, projectID string) (*domain.SolarProject, error)
	UpdateProject(ctx context.Context, projectID string, businessID string, req dto.UpdateSolarProjectRequest) (*domain.SolarProject, error)
	DeleteProject(ctx context.Context, projectID string, businessID string) error

	CreateMilestone(ctx context.Context, req dto.CreateMilestoneRequest) (*domain.ProjectMilestone, error)
	ListMilestones(ctx context.Context, projectID string) ([]domain.ProjectMilestone, error)
	// UpdateMilestoneStatus sets the status unconditionally and stamps the
	// completion date when the status becomes "completed".
	UpdateMilestoneStatus(ctx context.Context, milestoneID string, status string) error

	CreateMaterialConsumption(ctx context.Context, req dto.CreateMaterialConsumptionRequest) (*domain.MaterialConsumption, error)
	ListMaterials(ctx context.Context, projectID string) ([]domain.MaterialConsumption, error)

	CreateDocument(ctx context.Context, req dto.CreateGovernmentDocumentRequest) (*domain.GovernmentDocument, error)
	ListDocuments(ctx context.Context, projectID string) ([]domain.GovernmentDocument, error)
	UpdateDocumentStatus(ctx context.Context, documentID string, status string) error

	CreateSubsidy(ctx context.Context, req dto.CreateSubsidyRequest) (*domain.SubsidyTracking, error)
	ListSubsidies(ctx context.Context, projectID string) ([]domain.SubsidyTracking, error)
	// UpdateSubsidyStatus sets the status unconditionally; approved/received
	// amounts and their dates are written only when the matching status is set
	// and an amount is supplied.
	UpdateSubsidyStatus(ctx context.Context, subsidyID string, status string, approvedAmount, receivedAmount *decimal.Decimal) error
}
