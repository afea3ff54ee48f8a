package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ContractStatus string

const (
	ContractActive     ContractStatus = "ACTIVE"
	ContractSuspended  ContractStatus = "SUSPENDED"
	ContractTerminated ContractStatus = "TERMINATED"
	ContractCompleted  ContractStatus = "COMPLETED"
)

type CertificationLevel string

const (
	CertificationNational      CertificationLevel = "NATIONAL"
	CertificationProvincial    CertificationLevel = "PROVINCIAL"
	CertificationInternational CertificationLevel = "INTERNATIONAL"
)

// CertificationLevels lists the recognized contractor certification tiers.
var CertificationLevels = []CertificationLevel{
	CertificationProvincial,
	CertificationNational,
	CertificationInternational,
}

type Contractor struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:text;not null" json:"name"`

	LicenseNumber      string             `gorm:"type:text;not null;uniqueIndex" json:"license_number"`
	CertificationLevel CertificationLevel `gorm:"type:varchar(32);not null;default:'PROVINCIAL'" json:"certification_level"`

	// Specializations is a JSONB array of trade strings, e.g. ["sealing","drainage"].
	Specializations datatypes.JSONSlice[string] `gorm:"type:jsonb" swaggertype:"array,string" json:"specializations"`

	ContactEmail string `gorm:"type:text" json:"contact_email"`
	ContactPhone string `gorm:"type:text" json:"contact_phone"`
	IsActive     bool   `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Contractor <-> ContractorProject
	Assignments []ContractorProject `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Contractor <-> ProjectSection (optional assignment)
	Sections []ProjectSection `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Contractor) TableName() string { return "contractors" }

// ContractorProject links a contractor to a project with its contract terms.
type ContractorProject struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContractorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_contractor_project,priority:1" json:"contractor_id"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_contractor_project,priority:2" json:"project_id"`

	ContractValue     float64        `gorm:"type:numeric(14,2);not null;default:0" json:"contract_value"`
	ContractStatus    ContractStatus `gorm:"type:varchar(32);not null;default:'ACTIVE'" json:"contract_status"`
	PerformanceRating float64        `gorm:"not null;default:0" json:"performance_rating"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Contractor *Contractor `gorm:"foreignKey:ContractorID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"contractor,omitempty"`
	Project    *Project    `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (ContractorProject) TableName() string { return "contractor_projects" }
