package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

type MilestoneService interface {
	Create(ctx context.Context, in CreateMilestoneInput) (*model.Milestone, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Milestone, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateMilestoneInput) (*model.Milestone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repo.MilestoneFilter) ([]*model.Milestone, error)
}

type milestoneService struct {
	milestones repo.MilestoneRepo
	projects   repo.ProjectRepo
	events     EventPublisher
}

func NewMilestoneService(milestones repo.MilestoneRepo, projects repo.ProjectRepo, events EventPublisher) MilestoneService {
	return &milestoneService{milestones: milestones, projects: projects, events: events}
}

type CreateMilestoneInput struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PlannedDate time.Time `json:"planned_date"`
}

func (s *milestoneService) Create(ctx context.Context, in CreateMilestoneInput) (*model.Milestone, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	m := &model.Milestone{
		ProjectID:   in.ProjectID,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		PlannedDate: in.PlannedDate,
		Status:      model.MilestonePending,
	}
	if err := s.milestones.Create(ctx, m); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "milestone.created", m.ID.String(), m)
	return m, nil
}

func (s *milestoneService) Get(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	m, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return m, nil
}

type UpdateMilestoneInput struct {
	Name        *string                `json:"name"`
	Category    *string                `json:"category"`
	Description *string                `json:"description"`
	PlannedDate *time.Time             `json:"planned_date"`
	ActualDate  *time.Time             `json:"actual_date"`
	Status      *model.MilestoneStatus `json:"status"`
	Comment     string                 `json:"comment"`
	UserID      *uuid.UUID             `json:"-"`
}

func (s *milestoneService) Update(ctx context.Context, id uuid.UUID, in UpdateMilestoneInput) (*model.Milestone, error) {
	prev, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.PlannedDate != nil {
		fields["planned_date"] = *in.PlannedDate
	}
	if in.ActualDate != nil {
		fields["actual_date"] = *in.ActualDate
	}
	if in.Status != nil {
		fields["status"] = *in.Status
		// Marking achieved stamps the actual date if the client did not.
		if *in.Status == model.MilestoneAchieved && in.ActualDate == nil && prev.ActualDate == nil {
			fields["actual_date"] = time.Now().UTC()
		}
	}

	if len(fields) > 0 {
		if err := s.milestones.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	// Status transitions leave an audit row.
	if in.Status != nil && *in.Status != prev.Status {
		upd := &model.MilestoneUpdate{
			MilestoneID: id,
			Status:      *in.Status,
			Comment:     in.Comment,
			UserID:      in.UserID,
		}
		if err := s.milestones.AddUpdate(ctx, upd); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	m, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "milestone.updated", m.ID.String(), m)
	return m, nil
}

func (s *milestoneService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.milestones.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "milestone.deleted", id.String(), nil)
	return nil
}

func (s *milestoneService) List(ctx context.Context, f repo.MilestoneFilter) ([]*model.Milestone, error) {
	milestones, err := s.milestones.List(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return milestones, nil
}
