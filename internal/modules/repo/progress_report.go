package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type ProgressReportRepo interface {
	Create(ctx context.Context, p *model.ProgressReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProgressReport, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ProgressReportFilter) ([]*model.ProgressReport, error)
}

type progressReportRepo struct{ db *gorm.DB }

func NewProgressReportRepo(db *gorm.DB) ProgressReportRepo {
	return &progressReportRepo{db: db}
}

func (r *progressReportRepo) Create(ctx context.Context, p *model.ProgressReport) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *progressReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProgressReport, error) {
	var p model.ProgressReport
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressReportRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProgressReport{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *progressReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ProgressReport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *progressReportRepo) List(ctx context.Context, f ProgressReportFilter) ([]*model.ProgressReport, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.ProgressReport{}))

	var reports []*model.ProgressReport
	return reports, applyLimit(q.Order("report_date DESC"), f.Limit).Find(&reports).Error
}
