package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type ProvinceRepo interface {
	List(ctx context.Context) ([]*model.Province, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Province, error)
	Seed(ctx context.Context, provinces []model.Province) error
}

type provinceRepo struct{ db *gorm.DB }

func NewProvinceRepo(db *gorm.DB) ProvinceRepo {
	return &provinceRepo{db: db}
}

func (r *provinceRepo) List(ctx context.Context) ([]*model.Province, error) {
	var provinces []*model.Province
	return provinces, r.db.WithContext(ctx).Order("name ASC").Find(&provinces).Error
}

func (r *provinceRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Province, error) {
	var p model.Province
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Seed inserts the reference province list, ignoring rows already present.
func (r *provinceRepo) Seed(ctx context.Context, provinces []model.Province) error {
	if len(provinces) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&provinces).Error
}
