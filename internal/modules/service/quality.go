package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

type QualityService interface {
	Create(ctx context.Context, in CreateQualityReportInput) (*model.QualityReport, error)
	Get(ctx context.Context, id uuid.UUID) (*model.QualityReport, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateQualityReportInput) (*model.QualityReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repo.QualityReportFilter) ([]*model.QualityReport, error)
}

type qualityService struct {
	reports  repo.QualityReportRepo
	projects repo.ProjectRepo
	events   EventPublisher
}

func NewQualityService(reports repo.QualityReportRepo, projects repo.ProjectRepo, events EventPublisher) QualityService {
	return &qualityService{reports: reports, projects: projects, events: events}
}

type CreateQualityReportInput struct {
	ProjectID  uuid.UUID  `json:"project_id" binding:"required"`
	SectionID  *uuid.UUID `json:"section_id"`
	ReportType string     `json:"report_type" binding:"required"`
	TestDate   *time.Time `json:"test_date"`
	Location   string     `json:"location"`

	SpecCompliance          model.ComplianceStatus `json:"spec_compliance"`
	EnvironmentalCompliance model.ComplianceStatus `json:"environmental_compliance"`
	SocialCompliance        model.ComplianceStatus `json:"social_compliance"`

	QaQcStatus model.QaQcStatus `json:"qa_qc_status"`

	Deficiencies      []string `json:"deficiencies"`
	CorrectiveActions []string `json:"corrective_actions"`

	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date"`

	InspectorID *uuid.UUID `json:"-"`
}

func (s *qualityService) Create(ctx context.Context, in CreateQualityReportInput) (*model.QualityReport, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	testDate := time.Now().UTC()
	if in.TestDate != nil {
		testDate = in.TestDate.UTC()
	}

	r := &model.QualityReport{
		ProjectID:               in.ProjectID,
		SectionID:               in.SectionID,
		ReportType:              in.ReportType,
		TestDate:                testDate,
		Location:                in.Location,
		SpecCompliance:          defaultCompliance(in.SpecCompliance),
		EnvironmentalCompliance: defaultCompliance(in.EnvironmentalCompliance),
		SocialCompliance:        defaultCompliance(in.SocialCompliance),
		QaQcStatus:              in.QaQcStatus,
		Deficiencies:            datatypes.JSONSlice[string](in.Deficiencies),
		CorrectiveActions:       datatypes.JSONSlice[string](in.CorrectiveActions),
		FollowUpRequired:        in.FollowUpRequired,
		FollowUpDate:            in.FollowUpDate,
		InspectorID:             in.InspectorID,
	}
	if err := s.reports.Create(ctx, r); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "quality.created", r.ID.String(), r)
	return r, nil
}

func defaultCompliance(c model.ComplianceStatus) model.ComplianceStatus {
	if c == "" {
		return model.CompliancePending
	}
	return c
}

func (s *qualityService) Get(ctx context.Context, id uuid.UUID) (*model.QualityReport, error) {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return r, nil
}

type UpdateQualityReportInput struct {
	Location *string `json:"location"`

	SpecCompliance          *model.ComplianceStatus `json:"spec_compliance"`
	EnvironmentalCompliance *model.ComplianceStatus `json:"environmental_compliance"`
	SocialCompliance        *model.ComplianceStatus `json:"social_compliance"`

	QaQcStatus *model.QaQcStatus `json:"qa_qc_status"`

	Deficiencies      []string `json:"deficiencies"`
	CorrectiveActions []string `json:"corrective_actions"`

	FollowUpRequired *bool      `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date"`
}

func (s *qualityService) Update(ctx context.Context, id uuid.UUID, in UpdateQualityReportInput) (*model.QualityReport, error) {
	fields := map[string]interface{}{}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.SpecCompliance != nil {
		fields["spec_compliance"] = *in.SpecCompliance
	}
	if in.EnvironmentalCompliance != nil {
		fields["environmental_compliance"] = *in.EnvironmentalCompliance
	}
	if in.SocialCompliance != nil {
		fields["social_compliance"] = *in.SocialCompliance
	}
	if in.QaQcStatus != nil {
		fields["qa_qc_status"] = *in.QaQcStatus
	}
	if in.Deficiencies != nil {
		fields["deficiencies"] = datatypes.JSONSlice[string](in.Deficiencies)
	}
	if in.CorrectiveActions != nil {
		fields["corrective_actions"] = datatypes.JSONSlice[string](in.CorrectiveActions)
	}
	if in.FollowUpRequired != nil {
		fields["follow_up_required"] = *in.FollowUpRequired
	}
	if in.FollowUpDate != nil {
		fields["follow_up_date"] = *in.FollowUpDate
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

	s.events.Publish(ctx, "quality.updated", r.ID.String(), r)
	return r, nil
}

func (s *qualityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "quality.deleted", id.String(), nil)
	return nil
}

func (s *qualityService) List(ctx context.Context, f repo.QualityReportFilter) ([]*model.QualityReport, error) {
	reports, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return reports, nil
}
