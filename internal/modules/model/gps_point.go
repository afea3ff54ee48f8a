package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkPhase string

const (
	PhaseDrain   WorkPhase = "DRAIN"
	PhaseBasket  WorkPhase = "BASKET"
	PhaseSealing WorkPhase = "SEALING"
)

// WorkPhases lists the construction phases a field point can be logged against.
var WorkPhases = []WorkPhase{PhaseDrain, PhaseBasket, PhaseSealing}

type RoadSide string

const (
	SideLeft   RoadSide = "LEFT"
	SideRight  RoadSide = "RIGHT"
	SideCenter RoadSide = "CENTER"
)

// GpsPoint is a single field observation. The log is append-only:
// points are created and queried, never updated.
type GpsPoint struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_gps_project_time,priority:1" json:"project_id"`

	SectionID    *uuid.UUID `gorm:"type:uuid;index" json:"section_id,omitempty"`
	ContractorID *uuid.UUID `gorm:"type:uuid;index" json:"contractor_id,omitempty"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	Phase WorkPhase `gorm:"type:varchar(16);not null;index" json:"phase"`
	Side  RoadSide  `gorm:"type:varchar(16);not null;default:'CENTER'" json:"side"`

	// Chainage distance from the section start, in metres.
	Distance float64 `gorm:"not null;default:0" json:"distance"`
	Status   string  `gorm:"type:varchar(32);not null;default:'RECORDED';index" json:"status"`
	Notes    string  `gorm:"type:text" json:"notes"`

	// Timestamp is when the observation was taken in the field, which can
	// lag CreatedAt when devices sync later.
	Timestamp time.Time `gorm:"not null;index:idx_gps_project_time,priority:2" json:"timestamp"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Project    *Project        `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Section    *ProjectSection `gorm:"foreignKey:SectionID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
	Contractor *Contractor     `gorm:"foreignKey:ContractorID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
	User       *User           `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (GpsPoint) TableName() string { return "gps_points" }
