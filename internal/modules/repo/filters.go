package repo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

// DefaultListLimit applies when a filter does not set its own limit.
const DefaultListLimit = 50

// Filters are explicit structs with one optional field per recognized key.
// A field is applied as a constraint only when set; absent fields impose no
// restriction. Date ranges are inclusive on both ends and key on the
// per-entity timestamp column (test_date, timestamp, report_date,
// transaction_date, created_at) — the column choice is part of each
// entity's contract and is deliberately not unified.

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// apply constrains the named timestamp column to the window.
func (r DateRange) apply(q *gorm.DB, column string) *gorm.DB {
	if r.Start != nil {
		q = q.Where(column+" >= ?", *r.Start)
	}
	if r.End != nil {
		q = q.Where(column+" <= ?", *r.End)
	}
	return q
}

func applyLimit(q *gorm.DB, limit int) *gorm.DB {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return q.Limit(limit)
}

type ProjectFilter struct {
	ProvinceID   *uuid.UUID
	ContractorID *uuid.UUID
	Status       *model.ProjectStatus
	Range        DateRange // created_at
	Limit        int
}

func (f ProjectFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ProvinceID != nil {
		q = q.Where("projects.province_id = ?", *f.ProvinceID)
	}
	if f.ContractorID != nil {
		q = q.Joins("JOIN contractor_projects cp ON cp.project_id = projects.id").
			Where("cp.contractor_id = ?", *f.ContractorID)
	}
	if f.Status != nil {
		q = q.Where("projects.status = ?", *f.Status)
	}
	return f.Range.apply(q, "projects.created_at")
}

type GpsPointFilter struct {
	ProjectID    *uuid.UUID
	SectionID    *uuid.UUID
	ContractorID *uuid.UUID
	Phase        *model.WorkPhase
	Status       *string
	Range        DateRange // timestamp
	Limit        int
}

func (f GpsPointFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.SectionID != nil {
		q = q.Where("section_id = ?", *f.SectionID)
	}
	if f.ContractorID != nil {
		q = q.Where("contractor_id = ?", *f.ContractorID)
	}
	if f.Phase != nil {
		q = q.Where("phase = ?", *f.Phase)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	return f.Range.apply(q, "timestamp")
}

type QualityReportFilter struct {
	ProjectID  *uuid.UUID
	SectionID  *uuid.UUID
	ReportType *string
	QaQcStatus *model.QaQcStatus
	Range      DateRange // test_date
	Limit      int
}

func (f QualityReportFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.SectionID != nil {
		q = q.Where("section_id = ?", *f.SectionID)
	}
	if f.ReportType != nil {
		q = q.Where("report_type = ?", *f.ReportType)
	}
	if f.QaQcStatus != nil {
		q = q.Where("qa_qc_status = ?", *f.QaQcStatus)
	}
	return f.Range.apply(q, "test_date")
}

type ProgressReportFilter struct {
	ProjectID *uuid.UUID
	SectionID *uuid.UUID
	// ProjectScoped restricts to reports with no section, so section-level
	// rows never leak into a project-level view.
	ProjectScoped  bool
	ScheduleStatus *model.ScheduleStatus
	Range          DateRange // report_date
	Limit          int
}

func (f ProgressReportFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.SectionID != nil {
		q = q.Where("section_id = ?", *f.SectionID)
	} else if f.ProjectScoped {
		q = q.Where("section_id IS NULL")
	}
	if f.ScheduleStatus != nil {
		q = q.Where("schedule_status = ?", *f.ScheduleStatus)
	}
	return f.Range.apply(q, "report_date")
}

type MilestoneFilter struct {
	ProjectID *uuid.UUID
	Status    *model.MilestoneStatus
	Category  *string
	Range     DateRange // created_at
	Limit     int
}

func (f MilestoneFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	return f.Range.apply(q, "created_at")
}

type FundingFilter struct {
	ProjectID  *uuid.UUID
	FiscalYear *string
	Status     *model.FundingStatus
	Range      DateRange // created_at
	Limit      int
}

func (f FundingFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.FiscalYear != nil {
		q = q.Where("fiscal_year = ?", *f.FiscalYear)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	return f.Range.apply(q, "created_at")
}

type TransactionFilter struct {
	FundingID *uuid.UUID
	ProjectID *uuid.UUID
	Type      *model.TransactionType
	Range     DateRange // transaction_date
	Limit     int
}

func (f TransactionFilter) apply(q *gorm.DB) *gorm.DB {
	if f.FundingID != nil {
		q = q.Where("funding_transactions.funding_id = ?", *f.FundingID)
	}
	if f.ProjectID != nil {
		q = q.Joins("JOIN project_fundings pf ON pf.id = funding_transactions.funding_id").
			Where("pf.project_id = ?", *f.ProjectID)
	}
	if f.Type != nil {
		q = q.Where("funding_transactions.transaction_type = ?", *f.Type)
	}
	return f.Range.apply(q, "funding_transactions.transaction_date")
}

type ContractorFilter struct {
	Active         *bool
	Specialization *string
	Certification  *model.CertificationLevel
	Limit          int
}

func (f ContractorFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Specialization != nil {
		q = q.Where("specializations @> ?", `["`+*f.Specialization+`"]`)
	}
	if f.Certification != nil {
		q = q.Where("certification_level = ?", *f.Certification)
	}
	return q
}
