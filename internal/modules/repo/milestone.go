package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type MilestoneRepo interface {
	Create(ctx context.Context, m *model.Milestone) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f MilestoneFilter) ([]*model.Milestone, error)
	AddUpdate(ctx context.Context, u *model.MilestoneUpdate) error
}

type milestoneRepo struct{ db *gorm.DB }

func NewMilestoneRepo(db *gorm.DB) MilestoneRepo {
	return &milestoneRepo{db: db}
}

func (r *milestoneRepo) Create(ctx context.Context, m *model.Milestone) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *milestoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	var m model.Milestone
	err := r.db.WithContext(ctx).
		Preload("Updates", func(q *gorm.DB) *gorm.DB { return q.Order("created_at DESC") }).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *milestoneRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Milestone{}).
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

func (r *milestoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Milestone{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *milestoneRepo) List(ctx context.Context, f MilestoneFilter) ([]*model.Milestone, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.Milestone{}))

	var milestones []*model.Milestone
	return milestones, applyLimit(q.Order("planned_date ASC"), f.Limit).Find(&milestones).Error
}

// AddUpdate appends an audit row; the milestone row itself is updated
// separately by the service.
func (r *milestoneRepo) AddUpdate(ctx context.Context, u *model.MilestoneUpdate) error {
	return r.db.WithContext(ctx).Create(u).Error
}
