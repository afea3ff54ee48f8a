package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

type ProgressService interface {
	Create(ctx context.Context, in CreateProgressReportInput) (*model.ProgressReport, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ProgressReport, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProgressReportInput) (*model.ProgressReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repo.ProgressReportFilter) ([]*model.ProgressReport, error)
}

type progressService struct {
	reports  repo.ProgressReportRepo
	projects repo.ProjectRepo
	sections repo.SectionRepo
	events   EventPublisher
}

func NewProgressService(reports repo.ProgressReportRepo, projects repo.ProjectRepo, sections repo.SectionRepo, events EventPublisher) ProgressService {
	return &progressService{reports: reports, projects: projects, sections: sections, events: events}
}

type CreateProgressReportInput struct {
	ProjectID       uuid.UUID            `json:"project_id" binding:"required"`
	SectionID       *uuid.UUID           `json:"section_id"`
	ReportDate      *time.Time           `json:"report_date"`
	CurrentProgress float64              `json:"current_progress"`
	PlannedProgress float64              `json:"planned_progress"`
	ScheduleStatus  model.ScheduleStatus `json:"schedule_status"`
	WorksCompleted  []string             `json:"works_completed"`
	Issues          string               `json:"issues"`
	ReporterID      *uuid.UUID           `json:"-"`
}

func (s *progressService) Create(ctx context.Context, in CreateProgressReportInput) (*model.ProgressReport, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	reportDate := time.Now().UTC()
	if in.ReportDate != nil {
		reportDate = in.ReportDate.UTC()
	}

	// PreviousProgress snapshots the latest prior report for the same scope.
	var previous float64
	prior, err := s.reports.List(ctx, repo.ProgressReportFilter{
		ProjectID:     &in.ProjectID,
		SectionID:     in.SectionID,
		ProjectScoped: in.SectionID == nil,
		Limit:         1,
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if len(prior) > 0 {
		previous = prior[0].CurrentProgress
	}

	status := in.ScheduleStatus
	if status == "" {
		status = model.OnSchedule
	}

	r := &model.ProgressReport{
		ProjectID:        in.ProjectID,
		SectionID:        in.SectionID,
		ReportDate:       reportDate,
		CurrentProgress:  in.CurrentProgress,
		PreviousProgress: previous,
		PlannedProgress:  in.PlannedProgress,
		ScheduleStatus:   status,
		WorksCompleted:   datatypes.JSONSlice[string](in.WorksCompleted),
		Issues:           in.Issues,
		ReporterID:       in.ReporterID,
	}
	if err := s.reports.Create(ctx, r); err != nil {
		return nil, mapStoreErr(err)
	}

	// A section-scoped report rolls its percentage into the section row.
	if in.SectionID != nil {
		fields := map[string]interface{}{"progress_percentage": in.CurrentProgress}
		if err := s.sections.UpdateFields(ctx, *in.SectionID, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	s.events.Publish(ctx, "progress.created", r.ID.String(), r)
	return r, nil
}

func (s *progressService) Get(ctx context.Context, id uuid.UUID) (*model.ProgressReport, error) {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return r, nil
}

type UpdateProgressReportInput struct {
	CurrentProgress *float64              `json:"current_progress"`
	PlannedProgress *float64              `json:"planned_progress"`
	ScheduleStatus  *model.ScheduleStatus `json:"schedule_status"`
	WorksCompleted  []string              `json:"works_completed"`
	Issues          *string               `json:"issues"`
}

func (s *progressService) Update(ctx context.Context, id uuid.UUID, in UpdateProgressReportInput) (*model.ProgressReport, error) {
	fields := map[string]interface{}{}
	if in.CurrentProgress != nil {
		fields["current_progress"] = *in.CurrentProgress
	}
	if in.PlannedProgress != nil {
		fields["planned_progress"] = *in.PlannedProgress
	}
	if in.ScheduleStatus != nil {
		fields["schedule_status"] = *in.ScheduleStatus
	}
	if in.WorksCompleted != nil {
		fields["works_completed"] = datatypes.JSONSlice[string](in.WorksCompleted)
	}
	if in.Issues != nil {
		fields["issues"] = *in.Issues
	}

	if len(fields) > 0 {
		if err := s.reports.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "progress.updated", r.ID.String(), r)
	return r, nil
}

func (s *progressService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "progress.deleted", id.String(), nil)
	return nil
}

func (s *progressService) List(ctx context.Context, f repo.ProgressReportFilter) ([]*model.ProgressReport, error) {
	reports, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return reports, nil
}
