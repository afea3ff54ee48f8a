package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ScheduleStatus string

const (
	OnSchedule       ScheduleStatus = "ON_SCHEDULE"
	AheadOfSchedule  ScheduleStatus = "AHEAD"
	BehindSchedule   ScheduleStatus = "BEHIND"
	CriticalSchedule ScheduleStatus = "CRITICAL"
)

type ProgressReport struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	SectionID *uuid.UUID `gorm:"type:uuid;index" json:"section_id,omitempty"`

	// ReportDate is the period the report covers; range filters on progress
	// reports key on this column, not created_at.
	ReportDate time.Time `gorm:"not null;index" json:"report_date"`

	CurrentProgress  float64 `gorm:"not null;default:0" json:"current_progress"`
	PreviousProgress float64 `gorm:"not null;default:0" json:"previous_progress"`
	PlannedProgress  float64 `gorm:"not null;default:0" json:"planned_progress"`

	ScheduleStatus ScheduleStatus `gorm:"type:varchar(32);not null;default:'ON_SCHEDULE';index" json:"schedule_status"`

	WorksCompleted datatypes.JSONSlice[string] `gorm:"type:jsonb" swaggertype:"array,string" json:"works_completed"`
	Issues         string                      `gorm:"type:text" json:"issues"`

	ReporterID *uuid.UUID `gorm:"type:uuid;index" json:"reporter_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Project  *Project        `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Section  *ProjectSection `gorm:"foreignKey:SectionID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
	Reporter *User           `gorm:"foreignKey:ReporterID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (ProgressReport) TableName() string { return "progress_reports" }

// ProgressDelta is the period-over-period change.
func (p *ProgressReport) ProgressDelta() float64 {
	return p.CurrentProgress - p.PreviousProgress
}
