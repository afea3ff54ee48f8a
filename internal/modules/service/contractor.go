package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

type ContractorService interface {
	Create(ctx context.Context, in CreateContractorInput) (*model.Contractor, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Contractor, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateContractorInput) (*model.Contractor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repo.ContractorFilter) ([]*model.Contractor, error)

	Assign(ctx context.Context, in AssignContractorInput) (*model.ContractorProject, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, in UpdateAssignmentInput) (*model.ContractorProject, error)
	ListAssignments(ctx context.Context, contractorID, projectID *uuid.UUID, limit int) ([]*model.ContractorProject, error)
}

type contractorService struct {
	contractors repo.ContractorRepo
	projects    repo.ProjectRepo
	events      EventPublisher
}

func NewContractorService(contractors repo.ContractorRepo, projects repo.ProjectRepo, events EventPublisher) ContractorService {
	return &contractorService{contractors: contractors, projects: projects, events: events}
}

type CreateContractorInput struct {
	Name               string                   `json:"name" binding:"required"`
	LicenseNumber      string                   `json:"license_number" binding:"required"`
	CertificationLevel model.CertificationLevel `json:"certification_level"`
	Specializations    []string                 `json:"specializations"`
	ContactEmail       string                   `json:"contact_email"`
	ContactPhone       string                   `json:"contact_phone"`
}

func (s *contractorService) Create(ctx context.Context, in CreateContractorInput) (*model.Contractor, error) {
	level := in.CertificationLevel
	if level == "" {
		level = model.CertificationProvincial
	}

	c := &model.Contractor{
		Name:               in.Name,
		LicenseNumber:      in.LicenseNumber,
		CertificationLevel: level,
		Specializations:    datatypes.JSONSlice[string](in.Specializations),
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhone,
		IsActive:           true,
	}
	if err := s.contractors.Create(ctx, c); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "contractor.created", c.ID.String(), c)
	return c, nil
}

func (s *contractorService) Get(ctx context.Context, id uuid.UUID) (*model.Contractor, error) {
	c, err := s.contractors.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return c, nil
}

type UpdateContractorInput struct {
	Name               *string                   `json:"name"`
	CertificationLevel *model.CertificationLevel `json:"certification_level"`
	Specializations    []string                  `json:"specializations"`
	ContactEmail       *string                   `json:"contact_email"`
	ContactPhone       *string                   `json:"contact_phone"`
	IsActive           *bool                     `json:"is_active"`
}

func (s *contractorService) Update(ctx context.Context, id uuid.UUID, in UpdateContractorInput) (*model.Contractor, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.CertificationLevel != nil {
		fields["certification_level"] = *in.CertificationLevel
	}
	if in.Specializations != nil {
		fields["specializations"] = datatypes.JSONSlice[string](in.Specializations)
	}
	if in.ContactEmail != nil {
		fields["contact_email"] = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		fields["contact_phone"] = *in.ContactPhone
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) > 0 {
		if err := s.contractors.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	c, err := s.contractors.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "contractor.updated", c.ID.String(), c)
	return c, nil
}

func (s *contractorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contractors.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "contractor.deleted", id.String(), nil)
	return nil
}

func (s *contractorService) List(ctx context.Context, f repo.ContractorFilter) ([]*model.Contractor, error) {
	contractors, err := s.contractors.List(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return contractors, nil
}

type AssignContractorInput struct {
	ContractorID  uuid.UUID            `json:"contractor_id"`
	ProjectID     uuid.UUID            `json:"project_id"`
	ContractValue float64              `json:"contract_value"`
	Status        model.ContractStatus `json:"contract_status"`
	StartDate     *time.Time           `json:"start_date"`
	EndDate       *time.Time           `json:"end_date"`
}

func (s *contractorService) Assign(ctx context.Context, in AssignContractorInput) (*model.ContractorProject, error) {
	if _, err := s.contractors.GetByID(ctx, in.ContractorID); err != nil {
		return nil, mapStoreErr(err)
	}
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	status := in.Status
	if status == "" {
		status = model.ContractActive
	}

	a := &model.ContractorProject{
		ContractorID:   in.ContractorID,
		ProjectID:      in.ProjectID,
		ContractValue:  in.ContractValue,
		ContractStatus: status,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}
	if err := s.contractors.CreateAssignment(ctx, a); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "contractor.assigned", a.ID.String(), a)
	return a, nil
}

type UpdateAssignmentInput struct {
	ContractValue     *float64              `json:"contract_value"`
	ContractStatus    *model.ContractStatus `json:"contract_status"`
	PerformanceRating *float64              `json:"performance_rating"`
	StartDate         *time.Time            `json:"start_date"`
	EndDate           *time.Time            `json:"end_date"`
}

func (s *contractorService) UpdateAssignment(ctx context.Context, id uuid.UUID, in UpdateAssignmentInput) (*model.ContractorProject, error) {
	fields := map[string]interface{}{}
	if in.ContractValue != nil {
		fields["contract_value"] = *in.ContractValue
	}
	if in.ContractStatus != nil {
		fields["contract_status"] = *in.ContractStatus
	}
	if in.PerformanceRating != nil {
		fields["performance_rating"] = *in.PerformanceRating
	}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		fields["end_date"] = *in.EndDate
	}

	if len(fields) > 0 {
		if err := s.contractors.UpdateAssignmentFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	a, err := s.contractors.GetAssignment(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return a, nil
}

func (s *contractorService) ListAssignments(ctx context.Context, contractorID, projectID *uuid.UUID, limit int) ([]*model.ContractorProject, error) {
	assignments, err := s.contractors.ListAssignments(ctx, contractorID, projectID, limit)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return assignments, nil
}
