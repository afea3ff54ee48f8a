package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/pkg/paging"
)

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, in ListProjectsInput) (*ListProjectsOutput, error)

	CreateSection(ctx context.Context, in CreateSectionInput) (*model.ProjectSection, error)
	UpdateSection(ctx context.Context, id uuid.UUID, in UpdateSectionInput) (*model.ProjectSection, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
	ListSections(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectSection, error)
}

type projectService struct {
	projects  repo.ProjectRepo
	sections  repo.SectionRepo
	provinces repo.ProvinceRepo
	events    EventPublisher
}

func NewProjectService(projects repo.ProjectRepo, sections repo.SectionRepo, provinces repo.ProvinceRepo, events EventPublisher) ProjectService {
	return &projectService{projects: projects, sections: sections, provinces: provinces, events: events}
}

type CreateProjectInput struct {
	Name          string              `json:"name" binding:"required"`
	Description   string              `json:"description"`
	ProvinceID    uuid.UUID           `json:"province_id" binding:"required"`
	Status        model.ProjectStatus `json:"status"`
	TotalDistance float64             `json:"total_distance"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	Sponsor       string              `json:"sponsor"`
	TeamLead      string              `json:"team_lead"`
	StartDate     *time.Time          `json:"start_date"`
	TargetDate    *time.Time          `json:"target_date"`
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	// Province must exist; surfaces as 404 rather than an FK violation.
	if _, err := s.provinces.GetByID(ctx, in.ProvinceID); err != nil {
		return nil, mapStoreErr(err)
	}

	status := in.Status
	if status == "" {
		status = model.ProjectPlanning
	}

	p := &model.Project{
		Name:          in.Name,
		Description:   in.Description,
		ProvinceID:    in.ProvinceID,
		Status:        status,
		TotalDistance: in.TotalDistance,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Sponsor:       in.Sponsor,
		TeamLead:      in.TeamLead,
		StartDate:     in.StartDate,
		TargetDate:    in.TargetDate,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "project.created", p.ID.String(), p)
	return p, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return p, nil
}

// UpdateProjectInput carries a partial-field merge: nil fields keep their
// stored value.
type UpdateProjectInput struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	Status        *model.ProjectStatus `json:"status"`
	TotalDistance *float64             `json:"total_distance"`
	Latitude      *float64             `json:"latitude"`
	Longitude     *float64             `json:"longitude"`
	Sponsor       *string              `json:"sponsor"`
	TeamLead      *string              `json:"team_lead"`
	StartDate     *time.Time           `json:"start_date"`
	TargetDate    *time.Time           `json:"target_date"`
}

func (in UpdateProjectInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.TotalDistance != nil {
		fields["total_distance"] = *in.TotalDistance
	}
	if in.Latitude != nil {
		fields["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		fields["longitude"] = *in.Longitude
	}
	if in.Sponsor != nil {
		fields["sponsor"] = *in.Sponsor
	}
	if in.TeamLead != nil {
		fields["team_lead"] = *in.TeamLead
	}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.TargetDate != nil {
		fields["target_date"] = *in.TargetDate
	}
	return fields
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	fields := in.fields()
	if len(fields) > 0 {
		if err := s.projects.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "project.updated", p.ID.String(), p)
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "project.deleted", id.String(), nil)
	return nil
}

type ListProjectsInput struct {
	ProvinceID   *uuid.UUID
	ContractorID *uuid.UUID
	Status       *model.ProjectStatus
	Limit        int
	Cursor       string
	TimeDesc     bool
}

type ListProjectsOutput struct {
	Items      []*model.Project `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
	HasMore    bool             `json:"has_more"`
}

func (s *projectService) List(ctx context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = repo.DefaultListLimit
	}

	var afterT time.Time
	var afterID uuid.UUID
	if in.Cursor != "" {
		var err error
		afterT, afterID, err = paging.DecodeCursor(in.Cursor)
		if err != nil {
			return nil, err
		}
	}

	f := repo.ProjectFilter{
		ProvinceID:   in.ProvinceID,
		ContractorID: in.ContractorID,
		Status:       in.Status,
	}

	// Fetch limit+1 to determine has_more.
	projects, err := s.projects.List(ctx, f, afterT, afterID, limit+1, in.TimeDesc)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	out := &ListProjectsOutput{Items: projects}
	if len(projects) > limit {
		out.HasMore = true
		out.Items = projects[:limit]
		last := out.Items[len(out.Items)-1]
		out.NextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}
	return out, nil
}

type CreateSectionInput struct {
	ProjectID       uuid.UUID  `json:"project_id"`
	Name            string     `json:"name" binding:"required"`
	StartKm         float64    `json:"start_km"`
	EndKm           float64    `json:"end_km"`
	Length          float64    `json:"length"`
	BudgetAllocated float64    `json:"budget_allocated"`
	ContractorID    *uuid.UUID `json:"contractor_id"`
}

func (s *projectService) CreateSection(ctx context.Context, in CreateSectionInput) (*model.ProjectSection, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	length := in.Length
	if length == 0 && in.EndKm > in.StartKm {
		// Derive metres from chainage when the client omits it.
		length = (in.EndKm - in.StartKm) * 1000
	}

	sec := &model.ProjectSection{
		ProjectID:       in.ProjectID,
		Name:            in.Name,
		StartKm:         in.StartKm,
		EndKm:           in.EndKm,
		Length:          length,
		BudgetAllocated: in.BudgetAllocated,
		ContractorID:    in.ContractorID,
	}
	if err := s.sections.Create(ctx, sec); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "section.created", sec.ID.String(), sec)
	return sec, nil
}

type UpdateSectionInput struct {
	Name               *string    `json:"name"`
	ProgressPercentage *float64   `json:"progress_percentage"`
	BudgetAllocated    *float64   `json:"budget_allocated"`
	BudgetSpent        *float64   `json:"budget_spent"`
	ContractorID       *uuid.UUID `json:"contractor_id"`
}

func (s *projectService) UpdateSection(ctx context.Context, id uuid.UUID, in UpdateSectionInput) (*model.ProjectSection, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.ProgressPercentage != nil {
		fields["progress_percentage"] = *in.ProgressPercentage
	}
	if in.BudgetAllocated != nil {
		fields["budget_allocated"] = *in.BudgetAllocated
	}
	if in.BudgetSpent != nil {
		fields["budget_spent"] = *in.BudgetSpent
	}
	if in.ContractorID != nil {
		fields["contractor_id"] = *in.ContractorID
	}

	if len(fields) > 0 {
		if err := s.sections.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "section.updated", sec.ID.String(), sec)
	return sec, nil
}

func (s *projectService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	if err := s.sections.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "section.deleted", id.String(), nil)
	return nil
}

func (s *projectService) ListSections(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectSection, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, mapStoreErr(err)
	}
	sections, err := s.sections.ListByProject(ctx, projectID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return sections, nil
}
