package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type ContractorRepo interface {
	Create(ctx context.Context, c *model.Contractor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contractor, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ContractorFilter) ([]*model.Contractor, error)

	CreateAssignment(ctx context.Context, a *model.ContractorProject) error
	GetAssignment(ctx context.Context, id uuid.UUID) (*model.ContractorProject, error)
	UpdateAssignmentFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	ListAssignments(ctx context.Context, contractorID, projectID *uuid.UUID, limit int) ([]*model.ContractorProject, error)
}

type contractorRepo struct{ db *gorm.DB }

func NewContractorRepo(db *gorm.DB) ContractorRepo {
	return &contractorRepo{db: db}
}

func (r *contractorRepo) Create(ctx context.Context, c *model.Contractor) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contractor, error) {
	var c model.Contractor
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contractorRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Contractor{}).
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

func (r *contractorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Contractor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contractorRepo) List(ctx context.Context, f ContractorFilter) ([]*model.Contractor, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.Contractor{}))

	var contractors []*model.Contractor
	return contractors, applyLimit(q.Order("name ASC"), f.Limit).Find(&contractors).Error
}

func (r *contractorRepo) CreateAssignment(ctx context.Context, a *model.ContractorProject) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *contractorRepo) GetAssignment(ctx context.Context, id uuid.UUID) (*model.ContractorProject, error) {
	var a model.ContractorProject
	err := r.db.WithContext(ctx).
		Preload("Contractor").
		Preload("Project").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *contractorRepo) UpdateAssignmentFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.ContractorProject{}).
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

func (r *contractorRepo) ListAssignments(ctx context.Context, contractorID, projectID *uuid.UUID, limit int) ([]*model.ContractorProject, error) {
	q := r.db.WithContext(ctx).Model(&model.ContractorProject{})
	if contractorID != nil {
		q = q.Where("contractor_id = ?", *contractorID)
	}
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}

	var assignments []*model.ContractorProject
	return assignments, applyLimit(q.Preload("Contractor").Order("created_at DESC"), limit).Find(&assignments).Error
}
