package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	List(ctx context.Context, limit int) ([]*model.User, error)
	CountByRole(ctx context.Context, role model.Role) (int64, error)

	GrantAccess(ctx context.Context, grant *model.UserProjectAccess) error
	RevokeAccess(ctx context.Context, userID, projectID uuid.UUID) error
	GetAccess(ctx context.Context, userID, projectID uuid.UUID) (*model.UserProjectAccess, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
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

func (r *userRepo) List(ctx context.Context, limit int) ([]*model.User, error) {
	var users []*model.User
	q := r.db.WithContext(ctx).Order("created_at ASC")
	return users, applyLimit(q, limit).Find(&users).Error
}

func (r *userRepo) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *userRepo) GrantAccess(ctx context.Context, grant *model.UserProjectAccess) error {
	return r.db.WithContext(ctx).Create(grant).Error
}

func (r *userRepo) RevokeAccess(ctx context.Context, userID, projectID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&model.UserProjectAccess{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) GetAccess(ctx context.Context, userID, projectID uuid.UUID) (*model.UserProjectAccess, error) {
	var grant model.UserProjectAccess
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&grant).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}
