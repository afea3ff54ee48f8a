package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) List(ctx context.Context, f repo.ProjectFilter, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.Project, error) {
	args := m.Called(ctx, f, afterCreatedAt, afterID, limit, timeDesc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Count(ctx context.Context, f repo.ProjectFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

// MockSectionRepo is a mock implementation of SectionRepo
type MockSectionRepo struct {
	mock.Mock
}

func (m *MockSectionRepo) Create(ctx context.Context, s *model.ProjectSection) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectSection), args.Error(1)
}

func (m *MockSectionRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockSectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSectionRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectSection, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectSection), args.Error(1)
}

func (m *MockSectionRepo) ListAll(ctx context.Context, projectID *uuid.UUID) ([]*model.ProjectSection, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectSection), args.Error(1)
}

// MockContractorRepo is a mock implementation of ContractorRepo
type MockContractorRepo struct {
	mock.Mock
}

func (m *MockContractorRepo) Create(ctx context.Context, c *model.Contractor) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contractor), args.Error(1)
}

func (m *MockContractorRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockContractorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContractorRepo) List(ctx context.Context, f repo.ContractorFilter) ([]*model.Contractor, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Contractor), args.Error(1)
}

func (m *MockContractorRepo) CreateAssignment(ctx context.Context, a *model.ContractorProject) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockContractorRepo) GetAssignment(ctx context.Context, id uuid.UUID) (*model.ContractorProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContractorProject), args.Error(1)
}

func (m *MockContractorRepo) UpdateAssignmentFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockContractorRepo) ListAssignments(ctx context.Context, contractorID, projectID *uuid.UUID, limit int) ([]*model.ContractorProject, error) {
	args := m.Called(ctx, contractorID, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ContractorProject), args.Error(1)
}

// MockGpsPointRepo is a mock implementation of GpsPointRepo
type MockGpsPointRepo struct {
	mock.Mock
}

func (m *MockGpsPointRepo) Create(ctx context.Context, p *model.GpsPoint) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockGpsPointRepo) List(ctx context.Context, f repo.GpsPointFilter, desc bool) ([]*model.GpsPoint, error) {
	args := m.Called(ctx, f, desc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GpsPoint), args.Error(1)
}

func (m *MockGpsPointRepo) Count(ctx context.Context, f repo.GpsPointFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

// MockQualityReportRepo is a mock implementation of QualityReportRepo
type MockQualityReportRepo struct {
	mock.Mock
}

func (m *MockQualityReportRepo) Create(ctx context.Context, qr *model.QualityReport) error {
	args := m.Called(ctx, qr)
	return args.Error(0)
}

func (m *MockQualityReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.QualityReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QualityReport), args.Error(1)
}

func (m *MockQualityReportRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockQualityReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQualityReportRepo) List(ctx context.Context, f repo.QualityReportFilter) ([]*model.QualityReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QualityReport), args.Error(1)
}

// MockProgressReportRepo is a mock implementation of ProgressReportRepo
type MockProgressReportRepo struct {
	mock.Mock
}

func (m *MockProgressReportRepo) Create(ctx context.Context, p *model.ProgressReport) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgressReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProgressReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProgressReport), args.Error(1)
}

func (m *MockProgressReportRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProgressReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProgressReportRepo) List(ctx context.Context, f repo.ProgressReportFilter) ([]*model.ProgressReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProgressReport), args.Error(1)
}

// MockMilestoneRepo is a mock implementation of MilestoneRepo
type MockMilestoneRepo struct {
	mock.Mock
}

func (m *MockMilestoneRepo) Create(ctx context.Context, ms *model.Milestone) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMilestoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockMilestoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMilestoneRepo) List(ctx context.Context, f repo.MilestoneFilter) ([]*model.Milestone, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepo) AddUpdate(ctx context.Context, u *model.MilestoneUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// MockFundingRepo is a mock implementation of FundingRepo
type MockFundingRepo struct {
	mock.Mock
}

func (m *MockFundingRepo) Create(ctx context.Context, f *model.ProjectFunding) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFundingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectFunding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectFunding), args.Error(1)
}

func (m *MockFundingRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockFundingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFundingRepo) List(ctx context.Context, f repo.FundingFilter) ([]*model.ProjectFunding, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectFunding), args.Error(1)
}

func (m *MockFundingRepo) AddTransaction(ctx context.Context, tx *model.FundingTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockFundingRepo) ListTransactions(ctx context.Context, f repo.TransactionFilter) ([]*model.FundingTransaction, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FundingTransaction), args.Error(1)
}

type reportMocks struct {
	projects    *MockProjectRepo
	sections    *MockSectionRepo
	provinces   *MockProvinceRepo
	contractors *MockContractorRepo
	points      *MockGpsPointRepo
	quality     *MockQualityReportRepo
	progress    *MockProgressReportRepo
	milestones  *MockMilestoneRepo
	fundings    *MockFundingRepo
}

func newReportService() (ReportService, *reportMocks) {
	m := &reportMocks{
		projects:    &MockProjectRepo{},
		sections:    &MockSectionRepo{},
		provinces:   &MockProvinceRepo{},
		contractors: &MockContractorRepo{},
		points:      &MockGpsPointRepo{},
		quality:     &MockQualityReportRepo{},
		progress:    &MockProgressReportRepo{},
		milestones:  &MockMilestoneRepo{},
		fundings:    &MockFundingRepo{},
	}
	svc := NewReportService(
		m.projects, m.sections, m.provinces, m.contractors,
		m.points, m.quality, m.progress, m.milestones, m.fundings,
	)
	return svc, m
}

func TestReportService_UnknownType(t *testing.T) {
	svc, _ := newReportService()

	_, err := svc.Generate(context.Background(), "bogus", ReportFilters{})
	assert.ErrorIs(t, err, ErrUnknownReportType)
}

func TestReportService_Overview(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	projects := []*model.Project{
		{ID: uuid.New(), Status: model.ProjectInProgress, TotalDistance: 42.5},
		{ID: uuid.New(), Status: model.ProjectInProgress, TotalDistance: 17.5},
		{ID: uuid.New(), Status: model.ProjectPlanning, TotalDistance: 10},
	}
	sections := []*model.ProjectSection{
		{ProgressPercentage: 50, Length: 1000},
		{ProgressPercentage: 100, Length: 3000},
	}
	fundings := []*model.ProjectFunding{
		{BudgetAllocated: 1000, FundsReleased: 800, FundsUtilized: 400, FundsCommitted: 100},
		{BudgetAllocated: 500, FundsReleased: 200, FundsUtilized: 100},
	}
	quality := []*model.QualityReport{
		{QaQcStatus: model.QaQcPass},
		{QaQcStatus: model.QaQcPass},
		{QaQcStatus: model.QaQcFail},
		{QaQcStatus: model.QaQcReworkRequired},
	}
	milestones := []*model.Milestone{
		{Status: model.MilestoneAchieved},
		{Status: model.MilestonePending},
	}

	m.projects.On("List", mock.Anything, mock.Anything, time.Time{}, uuid.Nil, reportFetchLimit, false).Return(projects, nil)
	m.sections.On("ListAll", mock.Anything, (*uuid.UUID)(nil)).Return(sections, nil)
	m.fundings.On("List", mock.Anything, mock.Anything).Return(fundings, nil)
	m.quality.On("List", mock.Anything, mock.Anything).Return(quality, nil)
	m.milestones.On("List", mock.Anything, mock.Anything).Return(milestones, nil)

	report, err := svc.Generate(ctx, ReportOverview, ReportFilters{})
	assert.NoError(t, err)
	assert.Equal(t, ReportOverview, report.ReportType)

	data, ok := report.Data.(*OverviewData)
	assert.True(t, ok)

	assert.Equal(t, 3, data.TotalProjects)
	assert.Equal(t, 2, data.StatusBreakdown[model.ProjectInProgress])
	assert.Equal(t, 1, data.StatusBreakdown[model.ProjectPlanning])
	assert.InDelta(t, 70, data.TotalKm, 1e-9)

	// (50*1000 + 100*3000) / 4000
	assert.InDelta(t, 87.5, data.OverallProgress, 1e-9)

	assert.InDelta(t, 1500, data.Funding.Allocated, 1e-9)
	assert.InDelta(t, 1000, data.Funding.Released, 1e-9)
	assert.InDelta(t, 500, data.Funding.Utilized, 1e-9)

	// 500 utilized / 1500 allocated
	assert.InDelta(t, 33.3333, data.Funding.UtilizationRate, 1e-4)

	assert.InDelta(t, 50, data.QualityPassRate, 1e-9)
	assert.InDelta(t, 50, data.MilestoneAchievementRate, 1e-9)
}

func TestReportService_Overview_EmptySets(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	m.projects.On("List", mock.Anything, mock.Anything, time.Time{}, uuid.Nil, reportFetchLimit, false).Return([]*model.Project{}, nil)
	m.sections.On("ListAll", mock.Anything, (*uuid.UUID)(nil)).Return([]*model.ProjectSection{}, nil)
	m.fundings.On("List", mock.Anything, mock.Anything).Return([]*model.ProjectFunding{}, nil)
	m.quality.On("List", mock.Anything, mock.Anything).Return([]*model.QualityReport{}, nil)
	m.milestones.On("List", mock.Anything, mock.Anything).Return([]*model.Milestone{}, nil)

	report, err := svc.Generate(ctx, ReportOverview, ReportFilters{})
	assert.NoError(t, err)

	data := report.Data.(*OverviewData)
	assert.Zero(t, data.TotalProjects)
	assert.Zero(t, data.OverallProgress)
	assert.Zero(t, data.Funding.UtilizationRate)
	assert.Zero(t, data.QualityPassRate)
	assert.Zero(t, data.MilestoneAchievementRate)
}

func TestReportService_Gps(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	points := []*model.GpsPoint{
		{Latitude: -6.1, Longitude: 146.9, Phase: model.PhaseDrain, Status: "RECORDED", Timestamp: day},
		{Latitude: -6.3, Longitude: 147.2, Phase: model.PhaseDrain, Status: "VERIFIED", Timestamp: day.Add(2 * time.Hour)},
		{Latitude: -5.9, Longitude: 146.7, Phase: model.PhaseSealing, Status: "RECORDED", Timestamp: day.AddDate(0, 0, 1)},
	}

	m.points.On("List", mock.Anything, mock.Anything, false).Return(points, nil)
	m.points.On("Count", mock.Anything, mock.Anything).Return(int64(3), nil)

	report, err := svc.Generate(ctx, ReportGps, ReportFilters{})
	assert.NoError(t, err)

	data := report.Data.(*GpsData)
	assert.Equal(t, int64(3), data.TotalPoints)
	assert.Equal(t, 2, data.PhaseBreakdown[model.PhaseDrain])
	assert.Equal(t, 1, data.PhaseBreakdown[model.PhaseSealing])
	assert.Equal(t, 2, data.StatusBreakdown["RECORDED"])

	assert.NotNil(t, data.Bounds)
	assert.InDelta(t, -5.9, data.Bounds.North, 1e-9)
	assert.InDelta(t, -6.3, data.Bounds.South, 1e-9)
	assert.InDelta(t, 147.2, data.Bounds.East, 1e-9)
	assert.InDelta(t, 146.7, data.Bounds.West, 1e-9)

	assert.Equal(t, 2, data.DailyActivity["2025-03-10"])
	assert.Equal(t, 1, data.DailyActivity["2025-03-11"])
}

func TestReportService_Gps_EmptyBounds(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	m.points.On("List", mock.Anything, mock.Anything, false).Return([]*model.GpsPoint{}, nil)
	m.points.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	report, err := svc.Generate(ctx, ReportGps, ReportFilters{})
	assert.NoError(t, err)

	data := report.Data.(*GpsData)
	assert.Nil(t, data.Bounds)
	assert.Empty(t, data.Items)
}

func TestReportService_Contractor(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	active := &model.Contractor{ID: uuid.New(), Name: "Highlands Roadworks", IsActive: true}
	dormant := &model.Contractor{ID: uuid.New(), Name: "Coastal Civil", IsActive: false}

	assignments := []*model.ContractorProject{
		{ContractorID: active.ID, ContractValue: 100000, PerformanceRating: 4},
		{ContractorID: active.ID, ContractValue: 50000, PerformanceRating: 2},
	}

	m.contractors.On("List", mock.Anything, mock.Anything).Return([]*model.Contractor{active, dormant}, nil)
	m.contractors.On("ListAssignments", mock.Anything, (*uuid.UUID)(nil), (*uuid.UUID)(nil), reportFetchLimit).Return(assignments, nil)

	report, err := svc.Generate(ctx, ReportContractor, ReportFilters{})
	assert.NoError(t, err)

	data := report.Data.(*ContractorData)
	assert.Equal(t, 2, data.TotalContractors)
	assert.Equal(t, 1, data.ActiveCount)
	assert.Equal(t, 1, data.InactiveCount)
	assert.Len(t, data.Contractors, 2)

	assert.Equal(t, 2, data.Contractors[0].Assignments)
	assert.InDelta(t, 150000, data.Contractors[0].ContractValue, 1e-9)
	assert.InDelta(t, 3, data.Contractors[0].AvgRating, 1e-9)
	assert.Zero(t, data.Contractors[1].Assignments)
}

func TestFundingTotals_UtilizationRate(t *testing.T) {
	totals := fundingTotals([]*model.ProjectFunding{
		{BudgetAllocated: 1000, FundsReleased: 800, FundsUtilized: 400},
		{BudgetAllocated: 500, FundsReleased: 200, FundsUtilized: 100},
	})

	// Rate is utilized over allocated, not over released.
	assert.InDelta(t, 100*500.0/1500, totals.UtilizationRate, 1e-9)

	assert.Zero(t, fundingTotals(nil).UtilizationRate)
}

func TestReportService_Financial(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	projectID := uuid.New()
	fundings := []*model.ProjectFunding{
		{ProjectID: projectID, FundingSource: "GoPNG", BudgetAllocated: 2000, FundsReleased: 1000, FundsUtilized: 250},
		{ProjectID: projectID, FundingSource: "ADB", BudgetAllocated: 3000, FundsReleased: 1000, FundsUtilized: 750},
		{ProjectID: projectID, FundingSource: "GoPNG", BudgetAllocated: 500},
	}
	txs := []*model.FundingTransaction{
		{TransactionType: model.TransactionRelease, Amount: 1000},
	}

	m.fundings.On("List", mock.Anything, mock.Anything).Return(fundings, nil)
	m.fundings.On("ListTransactions", mock.Anything, mock.Anything).Return(txs, nil)

	report, err := svc.Generate(ctx, ReportFinancial, ReportFilters{ProjectID: &projectID})
	assert.NoError(t, err)

	data := report.Data.(*FinancialData)
	assert.InDelta(t, 5500, data.Totals.Allocated, 1e-9)
	assert.InDelta(t, 2000, data.Totals.Released, 1e-9)

	// 1000 utilized / 5500 allocated
	assert.InDelta(t, 18.1818, data.Totals.UtilizationRate, 1e-4)
	assert.InDelta(t, 2500, data.SourceBreakdown["GoPNG"], 1e-9)
	assert.InDelta(t, 3000, data.SourceBreakdown["ADB"], 1e-9)
	assert.Len(t, data.Transactions, 1)
}

func TestReportService_Progress(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	projectA := uuid.New()
	projectB := uuid.New()

	reports := []*model.ProgressReport{
		{ProjectID: projectA, CurrentProgress: 60, PreviousProgress: 50, ScheduleStatus: model.OnSchedule},
		{ProjectID: projectA, CurrentProgress: 50, PreviousProgress: 44, ScheduleStatus: model.BehindSchedule},
	}
	sections := []*model.ProjectSection{
		{ProjectID: projectA, ProgressPercentage: 60, Length: 2000},
		{ProjectID: projectA, ProgressPercentage: 20, Length: 2000},
		{ProjectID: projectB, ProgressPercentage: 100, Length: 500},
	}

	m.progress.On("List", mock.Anything, mock.Anything).Return(reports, nil)
	m.sections.On("ListAll", mock.Anything, (*uuid.UUID)(nil)).Return(sections, nil)

	report, err := svc.Generate(ctx, ReportProgress, ReportFilters{})
	assert.NoError(t, err)

	data := report.Data.(*ProgressData)
	assert.Equal(t, 2, data.TotalReports)
	assert.Equal(t, 1, data.ScheduleBreakdown[model.OnSchedule])
	assert.Equal(t, 1, data.ScheduleBreakdown[model.BehindSchedule])
	assert.InDelta(t, 8, data.AverageDelta, 1e-9)
	assert.InDelta(t, 40, data.ProjectProgress[projectA], 1e-9)
	assert.InDelta(t, 100, data.ProjectProgress[projectB], 1e-9)
}

func TestReportService_Province(t *testing.T) {
	ctx := context.Background()
	svc, m := newReportService()

	morobe := &model.Province{ID: uuid.New(), Name: "Morobe", Code: "MPL", Region: "Momase"}
	enga := &model.Province{ID: uuid.New(), Name: "Enga", Code: "EPL", Region: "Highlands"}

	projectA := &model.Project{ID: uuid.New(), ProvinceID: morobe.ID, TotalDistance: 30}
	projectB := &model.Project{ID: uuid.New(), ProvinceID: morobe.ID, TotalDistance: 20}

	sections := []*model.ProjectSection{
		{ProjectID: projectA.ID, ProgressPercentage: 40, Length: 1000},
		{ProjectID: projectB.ID, ProgressPercentage: 80, Length: 1000},
	}
	fundings := []*model.ProjectFunding{
		{ProjectID: projectA.ID, BudgetAllocated: 7000},
	}

	m.provinces.On("List", mock.Anything).Return([]*model.Province{morobe, enga}, nil)
	m.projects.On("List", mock.Anything, mock.Anything, time.Time{}, uuid.Nil, reportFetchLimit, false).Return([]*model.Project{projectA, projectB}, nil)
	m.sections.On("ListAll", mock.Anything, (*uuid.UUID)(nil)).Return(sections, nil)
	m.fundings.On("List", mock.Anything, mock.Anything).Return(fundings, nil)

	report, err := svc.Generate(ctx, ReportProvince, ReportFilters{})
	assert.NoError(t, err)

	data := report.Data.(*ProvinceData)
	assert.Len(t, data.Provinces, 2)

	assert.Equal(t, "Morobe", data.Provinces[0].Name)
	assert.Equal(t, 2, data.Provinces[0].Projects)
	assert.InDelta(t, 50, data.Provinces[0].TotalKm, 1e-9)
	assert.InDelta(t, 60, data.Provinces[0].Progress, 1e-9)
	assert.InDelta(t, 7000, data.Provinces[0].FundingAllocated, 1e-9)

	assert.Equal(t, "Enga", data.Provinces[1].Name)
	assert.Zero(t, data.Provinces[1].Projects)
	assert.Zero(t, data.Provinces[1].Progress)
}
