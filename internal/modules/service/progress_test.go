package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

func TestProgressService_Create_SnapshotsPreviousProgress(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	reports := &MockProgressReportRepo{}
	projects := &MockProjectRepo{}
	sections := &MockSectionRepo{}

	projects.On("GetByID", ctx, projectID).Return(&model.Project{ID: projectID}, nil)
	reports.On("List", ctx, repo.ProgressReportFilter{ProjectID: &projectID, ProjectScoped: true, Limit: 1}).
		Return([]*model.ProgressReport{{CurrentProgress: 35}}, nil)
	reports.On("Create", ctx, mock.AnythingOfType("*model.ProgressReport")).Return(nil)

	svc := NewProgressService(reports, projects, sections, NopEventPublisher{})

	r, err := svc.Create(ctx, CreateProgressReportInput{
		ProjectID:       projectID,
		CurrentProgress: 42,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 35, r.PreviousProgress, 1e-9)
	assert.InDelta(t, 7, r.ProgressDelta(), 1e-9)
	assert.Equal(t, model.OnSchedule, r.ScheduleStatus)
	assert.False(t, r.ReportDate.IsZero())

	reports.AssertExpectations(t)
}

func TestProgressService_Create_FirstReportHasZeroPrevious(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	reports := &MockProgressReportRepo{}
	projects := &MockProjectRepo{}
	sections := &MockSectionRepo{}

	projects.On("GetByID", ctx, projectID).Return(&model.Project{ID: projectID}, nil)
	reports.On("List", ctx, mock.Anything).Return([]*model.ProgressReport{}, nil)
	reports.On("Create", ctx, mock.AnythingOfType("*model.ProgressReport")).Return(nil)

	svc := NewProgressService(reports, projects, sections, NopEventPublisher{})

	r, err := svc.Create(ctx, CreateProgressReportInput{ProjectID: projectID, CurrentProgress: 10})
	assert.NoError(t, err)
	assert.Zero(t, r.PreviousProgress)
}

func TestProgressService_Create_ProjectReportIgnoresSectionRows(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	reports := &MockProgressReportRepo{}
	projects := &MockProjectRepo{}
	sections := &MockSectionRepo{}

	projects.On("GetByID", ctx, projectID).Return(&model.Project{ID: projectID}, nil)

	// A project-level report must look up its predecessor among
	// project-level rows only, never a section-scoped one.
	reports.On("List", ctx, mock.MatchedBy(func(f repo.ProgressReportFilter) bool {
		return f.SectionID == nil && f.ProjectScoped
	})).Return([]*model.ProgressReport{}, nil)
	reports.On("Create", ctx, mock.AnythingOfType("*model.ProgressReport")).Return(nil)

	svc := NewProgressService(reports, projects, sections, NopEventPublisher{})

	r, err := svc.Create(ctx, CreateProgressReportInput{ProjectID: projectID, CurrentProgress: 20})
	assert.NoError(t, err)
	assert.Zero(t, r.PreviousProgress)
	reports.AssertExpectations(t)
}

func TestProgressService_Create_SectionReportRollsIntoSection(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	sectionID := uuid.New()

	reports := &MockProgressReportRepo{}
	projects := &MockProjectRepo{}
	sections := &MockSectionRepo{}

	projects.On("GetByID", ctx, projectID).Return(&model.Project{ID: projectID}, nil)
	reports.On("List", ctx, mock.Anything).Return([]*model.ProgressReport{}, nil)
	reports.On("Create", ctx, mock.AnythingOfType("*model.ProgressReport")).Return(nil)
	sections.On("UpdateFields", ctx, sectionID, map[string]interface{}{"progress_percentage": 55.0}).Return(nil)

	svc := NewProgressService(reports, projects, sections, NopEventPublisher{})

	_, err := svc.Create(ctx, CreateProgressReportInput{
		ProjectID:       projectID,
		SectionID:       &sectionID,
		CurrentProgress: 55,
	})
	assert.NoError(t, err)
	sections.AssertExpectations(t)
}

func TestProgressService_Create_UnknownProject(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	reports := &MockProgressReportRepo{}
	projects := &MockProjectRepo{}
	sections := &MockSectionRepo{}

	projects.On("GetByID", ctx, projectID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProgressService(reports, projects, sections, NopEventPublisher{})

	_, err := svc.Create(ctx, CreateProgressReportInput{ProjectID: projectID})
	assert.ErrorIs(t, err, ErrNotFound)
	reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
