package services

import (
	"context"
	"testing"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSolarService(projectRepo *MockSolarProjectRepository, childRepo *MockSolarChildRepository, customerRepo *MockCustomerRepository, productRepo *MockProductRepository) *solarService {
	return NewSolarService(projectRepo, childRepo, customerRepo, productRepo).(*solarService)
}

func TestCreateProjectSnapshotsCustomerName(t *testing.T) {
	projectRepo := new(MockSolarProjectRepository)
	customerRepo := new(MockCustomerRepository)
	svc := newTestSolarService(projectRepo, new(MockSolarChildRepository), customerRepo, new(MockProductRepository))

	customerRepo.On("FindCustomerByID", mock.Anything, "c1").Return(&domain.Customer{ID: "c1", Name: "Rooftop Client"}, nil)
	projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("*domain.SolarProject")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.SolarProject)
			p.ProjectNumber = "SOLAR-00001"
		}).Return(nil)

	project, err := svc.CreateProject(context.Background(), "b1", dto.CreateSolarProjectRequest{
		CustomerID:  "c1",
		ProjectName: "5kW Rooftop",
		SiteAddress: "12 Sun Street",
	})

	require.NoError(t, err)
	assert.Equal(t, "SOLAR-00001", project.ProjectNumber)
	assert.Equal(t, "Rooftop Client", project.CustomerName)
	assert.Equal(t, domain.InstallationPlanning, project.InstallationStatus)
	assert.Equal(t, domain.SubsidyPending, project.SubsidyStatus)
}

func TestUpdateProjectOtherBusinessIsNotFound(t *testing.T) {
	projectRepo := new(MockSolarProjectRepository)
	svc := newTestSolarService(projectRepo, new(MockSolarChildRepository), new(MockCustomerRepository), new(MockProductRepository))

	projectRepo.On("FindProjectByID", mock.Anything, "p1").Return(&domain.SolarProject{
		ID: "p1", BusinessID: "other-business",
	}, nil)

	name := "Renamed"
	_, err := svc.UpdateProject(context.Background(), "p1", "b1", dto.UpdateSolarProjectRequest{ProjectName: &name})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	projectRepo.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
}

func TestUpdateProjectAppliesOnlyProvidedFields(t *testing.T) {
	projectRepo := new(MockSolarProjectRepository)
	svc := newTestSolarService(projectRepo, new(MockSolarChildRepository), new(MockCustomerRepository), new(MockProductRepository))

	projectRepo.On("FindProjectByID", mock.Anything, "p1").Return(&domain.SolarProject{
		ID: "p1", BusinessID: "b1", ProjectName: "Old Name", PanelQuantity: 10,
	}, nil)
	projectRepo.On("UpdateProject", mock.Anything, mock.MatchedBy(func(p domain.SolarProject) bool {
		return p.ProjectName == "New Name" && p.PanelQuantity == 10
	})).Return(nil)

	name := "New Name"
	project, err := svc.UpdateProject(context.Background(), "p1", "b1", dto.UpdateSolarProjectRequest{ProjectName: &name})

	require.NoError(t, err)
	assert.Equal(t, "New Name", project.ProjectName)
	assert.Equal(t, 10, project.PanelQuantity)
	projectRepo.AssertExpectations(t)
}

func TestCompletedMilestoneStampsCompletionDate(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), new(MockProductRepository))

	childRepo.On("UpdateMilestoneStatus", mock.Anything, "m1", domain.MilestoneCompleted, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.NotNil(t, args.Get(3))
		}).Return(nil)

	err := svc.UpdateMilestoneStatus(context.Background(), "m1", domain.MilestoneCompleted)
	require.NoError(t, err)
}

func TestNonCompletedMilestoneLeavesCompletionDate(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), new(MockProductRepository))

	childRepo.On("UpdateMilestoneStatus", mock.Anything, "m1", domain.MilestoneInProgress, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.Nil(t, args.Get(3))
		}).Return(nil)

	err := svc.UpdateMilestoneStatus(context.Background(), "m1", domain.MilestoneInProgress)
	require.NoError(t, err)
}

func TestSubsidyApprovalWritesAmountAndDate(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), new(MockProductRepository))

	amount := dec("25000")
	childRepo.On("UpdateSubsidyStatus", mock.Anything, "s1", mock.MatchedBy(func(u portsrepo.SubsidyStatusUpdate) bool {
		return u.Status == domain.SubsidyApproved &&
			u.ApprovedAmount != nil && u.ApprovedAmount.Equal(amount) &&
			u.ApprovalDate != nil &&
			u.ReceivedAmount == nil && u.ReceivedDate == nil
	})).Return(nil)

	err := svc.UpdateSubsidyStatus(context.Background(), "s1", domain.SubsidyApproved, &amount, nil)
	require.NoError(t, err)
	childRepo.AssertExpectations(t)
}

func TestSubsidyStatusWithoutAmountOnlySetsStatus(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), new(MockProductRepository))

	childRepo.On("UpdateSubsidyStatus", mock.Anything, "s1", mock.MatchedBy(func(u portsrepo.SubsidyStatusUpdate) bool {
		return u.Status == domain.SubsidyRejected && u.ApprovedAmount == nil && u.ReceivedAmount == nil
	})).Return(nil)

	err := svc.UpdateSubsidyStatus(context.Background(), "s1", domain.SubsidyRejected, nil, nil)
	require.NoError(t, err)
}

func TestNewSubsidyStartsPendingWithDefaultScheme(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), new(MockProductRepository))

	var saved domain.SubsidyTracking
	childRepo.On("SaveSubsidy", mock.Anything, mock.AnythingOfType("domain.SubsidyTracking")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.SubsidyTracking)
		}).Return(nil)

	subsidy, err := svc.CreateSubsidy(context.Background(), dto.CreateSubsidyRequest{
		ProjectID:     "p1",
		AppliedAmount: dec("78000"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SubsidyPending, subsidy.Status)
	assert.Equal(t, domain.SubsidyPending, saved.Status)
	assert.Equal(t, "PM Surya Ghar Yojana", saved.SchemeName)
	assert.True(t, saved.ApprovedAmount.IsZero())
	assert.True(t, saved.ReceivedAmount.IsZero())
}

func TestNewSubsidyKeepsExplicitScheme(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), new(MockProductRepository))

	childRepo.On("SaveSubsidy", mock.Anything, mock.MatchedBy(func(s domain.SubsidyTracking) bool {
		return s.SchemeName == "State Rooftop Scheme" && s.Status == domain.SubsidyPending
	})).Return(nil)

	_, err := svc.CreateSubsidy(context.Background(), dto.CreateSubsidyRequest{
		ProjectID:     "p1",
		SchemeName:    "State Rooftop Scheme",
		AppliedAmount: dec("50000"),
	})

	require.NoError(t, err)
	childRepo.AssertExpectations(t)
}

func TestMaterialConsumptionSnapshotsProductName(t *testing.T) {
	childRepo := new(MockSolarChildRepository)
	productRepo := new(MockProductRepository)
	svc := newTestSolarService(new(MockSolarProjectRepository), childRepo, new(MockCustomerRepository), productRepo)

	productRepo.On("FindProductByID", mock.Anything, "prod1").Return(&domain.Product{ID: "prod1", Name: "400W Panel"}, nil)
	childRepo.On("SaveMaterialConsumption", mock.Anything, mock.MatchedBy(func(c domain.MaterialConsumption) bool {
		return c.ProductName == "400W Panel" && c.ProjectID == "p1"
	})).Return(nil)

	consumption, err := svc.CreateMaterialConsumption(context.Background(), dto.CreateMaterialConsumptionRequest{
		ProjectID:    "p1",
		ProductID:    "prod1",
		QuantityUsed: dec("4"),
	})

	require.NoError(t, err)
	assert.Equal(t, "400W Panel", consumption.ProductName)
	childRepo.AssertExpectations(t)
}
