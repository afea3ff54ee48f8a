package model

import (
	"time"

	"github.com/google/uuid"
)

// Province is a PNG top-level administrative region, parent of projects.
// The table is seeded at bootstrap and treated as reference data.
type Province struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name   string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Code   string    `gorm:"type:varchar(8);not null;uniqueIndex" json:"code"`
	Region string    `gorm:"type:text;not null" json:"region"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Province <-> Project
	Projects []Project `gorm:"constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"-"`
}

func (Province) TableName() string { return "provinces" }
