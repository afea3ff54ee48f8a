package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type SectionRepo interface {
	Create(ctx context.Context, s *model.ProjectSection) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectSection, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectSection, error)
	ListAll(ctx context.Context, projectID *uuid.UUID) ([]*model.ProjectSection, error)
}

type sectionRepo struct{ db *gorm.DB }

func NewSectionRepo(db *gorm.DB) SectionRepo {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) Create(ctx context.Context, s *model.ProjectSection) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectSection, error) {
	var s model.ProjectSection
	err := r.db.WithContext(ctx).Preload("Contractor").First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProjectSection{}).
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

func (r *sectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ProjectSection{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sectionRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.ProjectSection, error) {
	var sections []*model.ProjectSection
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_km ASC").
		Find(&sections).Error
	return sections, err
}

// ListAll returns every section, optionally scoped to one project. Used by
// the report assemblers for whole-portfolio progress weighting.
func (r *sectionRepo) ListAll(ctx context.Context, projectID *uuid.UUID) ([]*model.ProjectSection, error) {
	q := r.db.WithContext(ctx).Model(&model.ProjectSection{})
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var sections []*model.ProjectSection
	return sections, q.Find(&sections).Error
}
