package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectTendering  ProjectStatus = "TENDERING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// ProjectStatuses lists every valid project status, in lifecycle order.
var ProjectStatuses = []ProjectStatus{
	ProjectPlanning,
	ProjectTendering,
	ProjectInProgress,
	ProjectOnHold,
	ProjectCompleted,
	ProjectCancelled,
}

type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string        `gorm:"type:text;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	ProvinceID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"province_id"`
	Status      ProjectStatus `gorm:"type:varchar(32);not null;default:'PLANNING';index" json:"status"`

	// Total road distance in kilometres.
	TotalDistance float64 `gorm:"not null;default:0" json:"total_distance"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`

	Sponsor  string `gorm:"type:text" json:"sponsor"`
	TeamLead string `gorm:"type:text" json:"team_lead"`

	StartDate  *time.Time `json:"start_date,omitempty"`
	TargetDate *time.Time `json:"target_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Project <-> Province
	Province *Province `gorm:"foreignKey:ProvinceID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"province,omitempty"`

	// Project <-> ProjectSection
	Sections []ProjectSection `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sections,omitempty"`

	// Project <-> ContractorProject
	Assignments []ContractorProject `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> GpsPoint
	GpsPoints []GpsPoint `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }

type ProjectSection struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`

	StartKm float64 `gorm:"not null;default:0" json:"start_km"`
	EndKm   float64 `gorm:"not null;default:0" json:"end_km"`
	// Section length in metres.
	Length float64 `gorm:"not null;default:0" json:"length"`

	ProgressPercentage float64 `gorm:"not null;default:0" json:"progress_percentage"`
	BudgetAllocated    float64 `gorm:"type:numeric(14,2);not null;default:0" json:"budget_allocated"`
	BudgetSpent        float64 `gorm:"type:numeric(14,2);not null;default:0" json:"budget_spent"`

	ContractorID *uuid.UUID `gorm:"type:uuid;index" json:"contractor_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Project    *Project    `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Contractor *Contractor `gorm:"foreignKey:ContractorID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"contractor,omitempty"`
}

func (ProjectSection) TableName() string { return "project_sections" }
