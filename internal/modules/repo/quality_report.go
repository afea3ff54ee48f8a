package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type QualityReportRepo interface {
	Create(ctx context.Context, qr *model.QualityReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.QualityReport, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f QualityReportFilter) ([]*model.QualityReport, error)
}

type qualityReportRepo struct{ db *gorm.DB }

func NewQualityReportRepo(db *gorm.DB) QualityReportRepo {
	return &qualityReportRepo{db: db}
}

func (r *qualityReportRepo) Create(ctx context.Context, qr *model.QualityReport) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

func (r *qualityReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.QualityReport, error) {
	var qr model.QualityReport
	err := r.db.WithContext(ctx).First(&qr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

func (r *qualityReportRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.QualityReport{}).
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

func (r *qualityReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.QualityReport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *qualityReportRepo) List(ctx context.Context, f QualityReportFilter) ([]*model.QualityReport, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.QualityReport{}))

	var reports []*model.QualityReport
	return reports, applyLimit(q.Order("test_date DESC"), f.Limit).Find(&reports).Error
}
