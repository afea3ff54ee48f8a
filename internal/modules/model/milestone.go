package model

import (
	"time"

	"github.com/google/uuid"
)

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "PENDING"
	MilestoneInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneAchieved   MilestoneStatus = "ACHIEVED"
	MilestoneMissed     MilestoneStatus = "MISSED"
	MilestoneCancelled  MilestoneStatus = "CANCELLED"
)

type Milestone struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	Name        string `gorm:"type:text;not null" json:"name"`
	Category    string `gorm:"type:varchar(64);not null;index" json:"category"`
	Description string `gorm:"type:text" json:"description"`

	PlannedDate time.Time       `gorm:"not null" json:"planned_date"`
	ActualDate  *time.Time      `json:"actual_date,omitempty"`
	Status      MilestoneStatus `gorm:"type:varchar(32);not null;default:'PENDING';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Milestone <-> MilestoneUpdate (audit trail)
	Updates []MilestoneUpdate `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"updates,omitempty"`
}

func (Milestone) TableName() string { return "milestones" }

// MilestoneUpdate is an append-only audit row recording a status change.
type MilestoneUpdate struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MilestoneID uuid.UUID       `gorm:"type:uuid;not null;index" json:"milestone_id"`
	Status      MilestoneStatus `gorm:"type:varchar(32);not null" json:"status"`
	Comment     string          `gorm:"type:text" json:"comment"`
	UserID      *uuid.UUID      `gorm:"type:uuid" json:"user_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Milestone *Milestone `gorm:"foreignKey:MilestoneID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	User      *User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (MilestoneUpdate) TableName() string { return "milestone_updates" }
