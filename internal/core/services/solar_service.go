package services

import (
	"context"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultSubsidyScheme is applied when a subsidy request names no scheme.
const defaultSubsidyScheme = "PM Surya Ghar Yojana"

type solarService struct {
	projectRepo  portsrepo.SolarProjectRepository
	childRepo    portsrepo.SolarChildRepository
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
}

// NewSolarService creates a SolarSvcFacade.
func NewSolarService(projectRepo portsrepo.SolarProjectRepository, childRepo portsrepo.SolarChildRepository, customerRepo portsrepo.CustomerRepository, productRepo portsrepo.ProductRepository) portssvc.SolarSvcFacade {
	return &solarService{
		projectRepo:  projectRepo,
		childRepo:    childRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

func (s *solarService) CreateProject(ctx context.Context, businessID string, req dto.CreateSolarProjectRequest) (*domain.SolarProject, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	project := domain.SolarProject{
		ID:                 uuid.NewString(),
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		BusinessID:         businessID,
		ProjectName:        req.ProjectName,
		SiteAddress:        req.SiteAddress,
		SystemCapacityKW:   req.SystemCapacityKW,
		PanelType:          req.PanelType,
		PanelQuantity:      req.PanelQuantity,
		InverterType:       req.InverterType,
		InverterQuantity:   req.InverterQuantity,
		EstimatedCost:      req.EstimatedCost,
		ActualCost:         decimal.Zero,
		SubsidyAmount:      req.SubsidyAmount,
		SubsidyStatus:      domain.SubsidyPending,
		DiscomName:         req.DiscomName,
		ConsumerNumber:     req.ConsumerNumber,
		InstallationStatus: domain.InstallationPlanning,
		StartDate:          req.StartDate,
		Notes:              req.Notes,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.projectRepo.SaveProject(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *solarService) ListProjects(ctx context.Context, businessID string) ([]domain.SolarProject, error) {
	return s.projectRepo.FindProjectsByBusiness(ctx, businessID, listLimit)
}

func (s *solarService) GetProject(ctx context.Context, projectID string) (*domain.SolarProject, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *solarService) UpdateProject(ctx context.Context, projectID string, businessID string, req dto.UpdateSolarProjectRequest) (*domain.SolarProject, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}

	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.SiteAddress != nil {
		project.SiteAddress = *req.SiteAddress
	}
	if req.SystemCapacityKW != nil {
		project.SystemCapacityKW = *req.SystemCapacityKW
	}
	if req.PanelType != nil {
		project.PanelType = *req.PanelType
	}
	if req.PanelQuantity != nil {
		project.PanelQuantity = *req.PanelQuantity
	}
	if req.InverterType != nil {
		project.InverterType = *req.InverterType
	}
	if req.InverterQuantity != nil {
		project.InverterQuantity = *req.InverterQuantity
	}
	if req.EstimatedCost != nil {
		project.EstimatedCost = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		project.ActualCost = *req.ActualCost
	}
	if req.SubsidyAmount != nil {
		project.SubsidyAmount = *req.SubsidyAmount
	}
	if req.SubsidyStatus != nil {
		project.SubsidyStatus = *req.SubsidyStatus
	}
	if req.DiscomName != nil {
		project.DiscomName = *req.DiscomName
	}
	if req.ConsumerNumber != nil {
		project.ConsumerNumber = *req.ConsumerNumber
	}
	if req.InstallationStatus != nil {
		project.InstallationStatus = *req.InstallationStatus
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.CompletionDate != nil {
		project.CompletionDate = req.CompletionDate
	}
	if req.Notes != nil {
		project.Notes = req.Notes
	}

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *solarService) DeleteProject(ctx context.Context, projectID string, businessID string) error {
	return s.projectRepo.DeleteProject(ctx, projectID, businessID)
}

func (s *solarService) CreateMilestone(ctx context.Context, req dto.CreateMilestoneRequest) (*domain.ProjectMilestone, error) {
	milestone := domain.ProjectMilestone{
		ID:            uuid.NewString(),
		ProjectID:     req.ProjectID,
		MilestoneName: req.MilestoneName,
		Description:   req.Description,
		Status:        domain.MilestonePending,
		DueDate:       req.DueDate,
		Amount:        req.Amount,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.childRepo.SaveMilestone(ctx, milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *solarService) ListMilestones(ctx context.Context, projectID string) ([]domain.ProjectMilestone, error) {
	return s.childRepo.FindMilestonesByProject(ctx, projectID, listLimit)
}

func (s *solarService) UpdateMilestoneStatus(ctx context.Context, milestoneID string, status string) error {
	var completionDate *time.Time
	if status == domain.MilestoneCompleted {
		now := time.Now().UTC()
		completionDate = &now
	}
	return s.childRepo.UpdateMilestoneStatus(ctx, milestoneID, status, completionDate)
}

func (s *solarService) CreateMaterialConsumption(ctx context.Context, req dto.CreateMaterialConsumptionRequest) (*domain.MaterialConsumption, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	consumption := domain.MaterialConsumption{
		ID:              uuid.NewString(),
		ProjectID:       req.ProjectID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		QuantityUsed:    req.QuantityUsed,
		ConsumptionDate: time.Now().UTC(),
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}
	if req.ConsumptionDate != nil {
		consumption.ConsumptionDate = *req.ConsumptionDate
	}

	if err := s.childRepo.SaveMaterialConsumption(ctx, consumption); err != nil {
		return nil, err
	}
	return &consumption, nil
}

func (s *solarService) ListMaterials(ctx context.Context, projectID string) ([]domain.MaterialConsumption, error) {
	return s.childRepo.FindMaterialsByProject(ctx, projectID, listLimit)
}

func (s *solarService) CreateDocument(ctx context.Context, req dto.CreateGovernmentDocumentRequest) (*domain.GovernmentDocument, error) {
	document := domain.GovernmentDocument{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		DocumentType:   req.DocumentType,
		DocumentName:   req.DocumentName,
		DocumentNumber: req.DocumentNumber,
		IssueDate:      req.IssueDate,
		ExpiryDate:     req.ExpiryDate,
		Status:         req.Status,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
	}
	if document.Status == "" {
		document.Status = domain.MilestonePending
	}
	if err := s.childRepo.SaveDocument(ctx, document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *solarService) ListDocuments(ctx context.Context, projectID string) ([]domain.GovernmentDocument, error) {
	return s.childRepo.FindDocumentsByProject(ctx, projectID, listLimit)
}

func (s *solarService) UpdateDocumentStatus(ctx context.Context, documentID string, status string) error {
	return s.childRepo.UpdateDocumentStatus(ctx, documentID, status)
}

func (s *solarService) CreateSubsidy(ctx context.Context, req dto.CreateSubsidyRequest) (*domain.SubsidyTracking, error) {
	schemeName := req.SchemeName
	if schemeName == "" {
		schemeName = defaultSubsidyScheme
	}
	subsidy := domain.SubsidyTracking{
		ID:                uuid.NewString(),
		ProjectID:         req.ProjectID,
		SchemeName:        schemeName,
		AppliedAmount:     req.AppliedAmount,
		ApprovedAmount:    decimal.Zero,
		ReceivedAmount:    decimal.Zero,
		ApplicationDate:   req.ApplicationDate,
		ApplicationNumber: req.ApplicationNumber,
		Status:            domain.SubsidyPending,
		Remarks:           req.Remarks,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.childRepo.SaveSubsidy(ctx, subsidy); err != nil {
		return nil, err
	}
	return &subsidy, nil
}

func (s *solarService) ListSubsidies(ctx context.Context, projectID string) ([]domain.SubsidyTracking, error) {
	return s.childRepo.FindSubsidiesByProject(ctx, projectID, listLimit)
}

func (s *solarService) UpdateSubsidyStatus(ctx context.Context, subsidyID string, status string, approvedAmount, receivedAmount *decimal.Decimal) error {
	update := portsrepo.SubsidyStatusUpdate{Status: status}
	now := time.Now().UTC()

	if status == domain.SubsidyApproved && approvedAmount != nil {
		update.ApprovedAmount = approvedAmount
		update.ApprovalDate = &now
	}
	if status == domain.SubsidyReceived && receivedAmount != nil {
		update.ReceivedAmount = receivedAmount
		update.ReceivedDate = &now
	}

	return s.childRepo.UpdateSubsidyStatus(ctx, subsidyID, update)
}
