package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type GpsPointRepo interface {
	Create(ctx context.Context, p *model.GpsPoint) error
	List(ctx context.Context, f GpsPointFilter, desc bool) ([]*model.GpsPoint, error)
	Count(ctx context.Context, f GpsPointFilter) (int64, error)
}

type gpsPointRepo struct{ db *gorm.DB }

func NewGpsPointRepo(db *gorm.DB) GpsPointRepo {
	return &gpsPointRepo{db: db}
}

// Create appends a field observation. Points are never updated or deleted
// through the API; the log is append-only.
func (r *gpsPointRepo) Create(ctx context.Context, p *model.GpsPoint) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gpsPointRepo) List(ctx context.Context, f GpsPointFilter, desc bool) ([]*model.GpsPoint, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.GpsPoint{}))

	order := "timestamp ASC"
	if desc {
		order = "timestamp DESC"
	}

	var points []*model.GpsPoint
	return points, applyLimit(q.Order(order), f.Limit).Find(&points).Error
}

func (r *gpsPointRepo) Count(ctx context.Context, f GpsPointFilter) (int64, error) {
	var n int64
	err := f.apply(r.db.WithContext(ctx).Model(&model.GpsPoint{})).Count(&n).Error
	return n, err
}
