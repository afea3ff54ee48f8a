package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

func TestMilestoneService_Update_AchievedStampsActualDate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	milestones := &MockMilestoneRepo{}
	projects := &MockProjectRepo{}

	pending := &model.Milestone{ID: id, Status: model.MilestonePending}
	achieved := &model.Milestone{ID: id, Status: model.MilestoneAchieved}

	milestones.On("GetByID", ctx, id).Return(pending, nil).Once()
	milestones.On("UpdateFields", ctx, id, mock.MatchedBy(func(fields map[string]interface{}) bool {
		if fields["status"] != model.MilestoneAchieved {
			return false
		}
		_, stamped := fields["actual_date"].(time.Time)
		return stamped
	})).Return(nil)
	milestones.On("AddUpdate", ctx, mock.MatchedBy(func(u *model.MilestoneUpdate) bool {
		return u.MilestoneID == id &&
			u.Status == model.MilestoneAchieved &&
			u.Comment == "section sealed" &&
			u.UserID != nil && *u.UserID == userID
	})).Return(nil)
	milestones.On("GetByID", ctx, id).Return(achieved, nil).Once()

	svc := NewMilestoneService(milestones, projects, NopEventPublisher{})

	status := model.MilestoneAchieved
	m, err := svc.Update(ctx, id, UpdateMilestoneInput{
		Status:  &status,
		Comment: "section sealed",
		UserID:  &userID,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.MilestoneAchieved, m.Status)
	milestones.AssertExpectations(t)
}

func TestMilestoneService_Update_SameStatusSkipsAuditRow(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	milestones := &MockMilestoneRepo{}
	projects := &MockProjectRepo{}

	current := &model.Milestone{ID: id, Status: model.MilestoneInProgress}
	milestones.On("GetByID", ctx, id).Return(current, nil)
	milestones.On("UpdateFields", ctx, id, mock.Anything).Return(nil)

	svc := NewMilestoneService(milestones, projects, NopEventPublisher{})

	status := model.MilestoneInProgress
	_, err := svc.Update(ctx, id, UpdateMilestoneInput{Status: &status})
	assert.NoError(t, err)
	milestones.AssertNotCalled(t, "AddUpdate", mock.Anything, mock.Anything)
}

func TestMilestoneService_Create_DefaultsToPending(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	milestones := &MockMilestoneRepo{}
	projects := &MockProjectRepo{}

	projects.On("GetByID", ctx, projectID).Return(&model.Project{ID: projectID}, nil)
	milestones.On("Create", ctx, mock.AnythingOfType("*model.Milestone")).Return(nil)

	svc := NewMilestoneService(milestones, projects, NopEventPublisher{})

	m, err := svc.Create(ctx, CreateMilestoneInput{
		ProjectID:   projectID,
		Name:        "Base course complete",
		Category:    "CONSTRUCTION",
		PlannedDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, model.MilestonePending, m.Status)
}

func TestMilestoneService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	milestones := &MockMilestoneRepo{}
	milestones.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMilestoneService(milestones, &MockProjectRepo{}, NopEventPublisher{})

	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
