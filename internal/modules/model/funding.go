package model

import (
	"time"

	"github.com/google/uuid"
)

type FundingStatus string

const (
	FundingProposed  FundingStatus = "PROPOSED"
	FundingApproved  FundingStatus = "APPROVED"
	FundingActive    FundingStatus = "ACTIVE"
	FundingExhausted FundingStatus = "EXHAUSTED"
	FundingClosed    FundingStatus = "CLOSED"
)

type TransactionType string

const (
	TransactionRelease     TransactionType = "RELEASE"
	TransactionExpenditure TransactionType = "EXPENDITURE"
	TransactionCommitment  TransactionType = "COMMITMENT"
	TransactionAdjustment  TransactionType = "ADJUSTMENT"
)

// ProjectFunding tracks one funding source for a project.
type ProjectFunding struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	FundingSource string `gorm:"type:text;not null" json:"funding_source"`
	FiscalYear    string `gorm:"type:varchar(16);not null;index" json:"fiscal_year"`

	BudgetAllocated float64 `gorm:"type:numeric(14,2);not null;default:0" json:"budget_allocated"`
	FundsReleased   float64 `gorm:"type:numeric(14,2);not null;default:0" json:"funds_released"`
	FundsUtilized   float64 `gorm:"type:numeric(14,2);not null;default:0" json:"funds_utilized"`
	FundsCommitted  float64 `gorm:"type:numeric(14,2);not null;default:0" json:"funds_committed"`

	Status FundingStatus `gorm:"type:varchar(32);not null;default:'PROPOSED';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// ProjectFunding <-> FundingTransaction
	Transactions []FundingTransaction `gorm:"foreignKey:FundingID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"transactions,omitempty"`
}

func (ProjectFunding) TableName() string { return "project_fundings" }

type FundingTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FundingID uuid.UUID `gorm:"type:uuid;not null;index" json:"funding_id"`

	TransactionType TransactionType `gorm:"type:varchar(32);not null;index" json:"transaction_type"`
	Amount          float64         `gorm:"type:numeric(14,2);not null" json:"amount"`
	Reference       string          `gorm:"type:text" json:"reference"`
	Description     string          `gorm:"type:text" json:"description"`

	// TransactionDate is the ledger date; range filters on transactions key
	// on this column, not created_at.
	TransactionDate time.Time `gorm:"not null;index" json:"transaction_date"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Funding *ProjectFunding `gorm:"foreignKey:FundingID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (FundingTransaction) TableName() string { return "funding_transactions" }
