package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ProjectFilter, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.Project, error)
	Count(ctx context.Context, f ProjectFilter) (int64, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("Province").
		Preload("Sections").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateFields performs a partial-field merge; absent keys keep their value.
func (r *projectRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Project{}).
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

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) List(ctx context.Context, f ProjectFilter, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.Project, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.Project{}))

	if !afterCreatedAt.IsZero() && afterID != uuid.Nil {
		cmp := ">"
		if timeDesc {
			cmp = "<"
		}
		q = q.Where(
			"(projects.created_at "+cmp+" ?) OR (projects.created_at = ? AND projects.id "+cmp+" ?)",
			afterCreatedAt, afterCreatedAt, afterID,
		)
	}

	orderBy := "projects.created_at ASC, projects.id ASC"
	if timeDesc {
		orderBy = "projects.created_at DESC, projects.id DESC"
	}

	var projects []*model.Project
	query := q.Preload("Province").Preload("Sections").Order(orderBy)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return projects, query.Find(&projects).Error
}

func (r *projectRepo) Count(ctx context.Context, f ProjectFilter) (int64, error) {
	var n int64
	err := f.apply(r.db.WithContext(ctx).Model(&model.Project{})).Count(&n).Error
	return n, err
}
