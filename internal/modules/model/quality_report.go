package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ComplianceStatus string

const (
	Compliant          ComplianceStatus = "COMPLIANT"
	NonCompliant       ComplianceStatus = "NON_COMPLIANT"
	PartiallyCompliant ComplianceStatus = "PARTIAL"
	CompliancePending  ComplianceStatus = "PENDING"
)

// ComplianceStatuses lists valid values for the three compliance dimensions.
var ComplianceStatuses = []ComplianceStatus{
	Compliant,
	NonCompliant,
	PartiallyCompliant,
	CompliancePending,
}

type QaQcStatus string

const (
	QaQcPass            QaQcStatus = "PASS"
	QaQcFail            QaQcStatus = "FAIL"
	QaQcConditionalPass QaQcStatus = "CONDITIONAL_PASS"
	QaQcReworkRequired  QaQcStatus = "REWORK_REQUIRED"
)

// QaQcStatuses lists the quality-gate outcomes.
var QaQcStatuses = []QaQcStatus{
	QaQcPass,
	QaQcFail,
	QaQcConditionalPass,
	QaQcReworkRequired,
}

type QualityReport struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	SectionID *uuid.UUID `gorm:"type:uuid;index" json:"section_id,omitempty"`

	ReportType string `gorm:"type:varchar(64);not null;index" json:"report_type"`
	// TestDate is the date the inspection or test was carried out; range
	// filters on quality reports key on this column, not created_at.
	TestDate time.Time `gorm:"not null;index" json:"test_date"`
	Location string    `gorm:"type:text" json:"location"`

	SpecCompliance          ComplianceStatus `gorm:"type:varchar(32);not null;default:'PENDING'" json:"spec_compliance"`
	EnvironmentalCompliance ComplianceStatus `gorm:"type:varchar(32);not null;default:'PENDING'" json:"environmental_compliance"`
	SocialCompliance        ComplianceStatus `gorm:"type:varchar(32);not null;default:'PENDING'" json:"social_compliance"`

	QaQcStatus QaQcStatus `gorm:"type:varchar(32);not null;index" json:"qa_qc_status"`

	Deficiencies      datatypes.JSONSlice[string] `gorm:"type:jsonb" swaggertype:"array,string" json:"deficiencies"`
	CorrectiveActions datatypes.JSONSlice[string] `gorm:"type:jsonb" swaggertype:"array,string" json:"corrective_actions"`

	FollowUpRequired bool       `gorm:"not null;default:false" json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date,omitempty"`

	InspectorID *uuid.UUID `gorm:"type:uuid;index" json:"inspector_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Project   *Project        `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Section   *ProjectSection `gorm:"foreignKey:SectionID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
	Inspector *User           `gorm:"foreignKey:InspectorID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (QualityReport) TableName() string { return "quality_reports" }
