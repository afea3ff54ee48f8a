package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleManager        Role = "MANAGER"
	RoleSupervisor     Role = "SUPERVISOR"
	RoleEngineer       Role = "ENGINEER"
	RoleQaQcOfficer    Role = "QA_QC_OFFICER"
	RoleProgramManager Role = "PROGRAM_MANAGER"
	RoleSiteEngineer   Role = "SITE_ENGINEER"
)

// Roles lists every assignable role.
var Roles = []Role{
	RoleAdmin,
	RoleManager,
	RoleSupervisor,
	RoleEngineer,
	RoleQaQcOfficer,
	RoleProgramManager,
	RoleSiteEngineer,
}

type AccessLevel string

const (
	AccessView   AccessLevel = "VIEW"
	AccessEdit   AccessLevel = "EDIT"
	AccessManage AccessLevel = "MANAGE"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"type:text;not null" json:"name"`
	Email string    `gorm:"type:text;not null;uniqueIndex" json:"email"`

	PasswordHash string `gorm:"type:text;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(32);not null;index" json:"role"`
	IsActive     bool   `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// User <-> UserProjectAccess
	ProjectAccess []UserProjectAccess `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }

// UserProjectAccess grants a user a per-project access level.
type UserProjectAccess struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_project,priority:1" json:"user_id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_project,priority:2" json:"project_id"`
	Level     AccessLevel `gorm:"type:varchar(16);not null;default:'VIEW'" json:"level"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (UserProjectAccess) TableName() string { return "user_project_access" }
