package repositories

import (
	"context"
	"time"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SolarProjectRepository defines persistence operations for solar projects.
type SolarProjectRepository interface {
	// SaveProject assigns the next sequential project number for the business
	// and inserts the project in a single transaction. The assigned number is
	// written back to the passed project.
	SaveProject(ctx context.Context, project *domain.SolarProject) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.SolarProject, error)
	FindProjectsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.SolarProject, error)
	UpdateProject(ctx context.Context, project domain.SolarProject) error
	DeleteProject(ctx context.Context, projectID string, businessID string) error
}

// SubsidyStatusUpdate carries the fields written by a subsidy status change.
// Nil amounts/dates are left untouched.
type SubsidyStatusUpdate struct {
	Status         string
	ApprovedAmount *decimal.Decimal
	ApprovalDate   *time.Time
	ReceivedAmount *decimal.Decimal
	ReceivedDate   *time.Time
}

// SolarChildRepository defines persistence operations for the project child
// records: milestones, material consumption, government documents and subsidy
// tracking. Child records are keyed by project_id with no business scoping on
// any operation.
type SolarChildRepository interface {
	SaveMilestone(ctx context.Context, milestone domain.ProjectMilestone) error
	FindMilestonesByProject(ctx context.Context, projectID string, limit int) ([]domain.ProjectMilestone, error)
	UpdateMilestoneStatus(ctx context.Context, milestoneID string, status string, completionDate *time.Time) error

	// SaveMaterialConsumption inserts the consumption record and decrements
	// the referenced product's stock in a single transaction (unchecked).
	SaveMaterialConsumption(ctx context.Context, consumption domain.MaterialConsumption) error
	FindMaterialsByProject(ctx context.Context, projectID string, limit int) ([]domain.MaterialConsumption, error)

	SaveDocument(ctx context.Context, document domain.GovernmentDocument) error
	FindDocumentsByProject(ctx context.Context, projectID string, limit int) ([]domain.GovernmentDocument, error)
	UpdateDocumentStatus(ctx context.Context, documentID string, status string) error

	SaveSubsidy(ctx context.Context, subsidy domain.SubsidyTracking) error
	FindSubsidiesByProject(ctx context.Context, projectID string, limit int) ([]domain.SubsidyTracking, error)
	UpdateSubsidyStatus(ctx context.Context, subsidyID string, update SubsidyStatusUpdate) error
}
