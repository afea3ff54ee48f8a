package service

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/pkg/utils/secrets"
)

const minPasswordLength = 8

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit int) ([]*model.User, error)

	GrantAccess(ctx context.Context, in GrantAccessInput) (*model.UserProjectAccess, error)
	RevokeAccess(ctx context.Context, userID, projectID uuid.UUID) error
}

type userService struct {
	users    repo.UserRepo
	projects repo.ProjectRepo
}

func NewUserService(users repo.UserRepo, projects repo.ProjectRepo) UserService {
	return &userService{users: users, projects: projects}
}

type CreateUserInput struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required"`
	Role     model.Role `json:"role" binding:"required"`
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if len(in.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !slices.Contains(model.Roles, in.Role) {
		return nil, ErrUnknownRole
	}

	hash, err := secrets.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, mapStoreErr(err)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return u, nil
}

type UpdateUserInput struct {
	Name     *string     `json:"name"`
	Password *string     `json:"password"`
	Role     *model.Role `json:"role"`
	IsActive *bool       `json:"is_active"`
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hash, err := secrets.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if in.Role != nil {
		if !slices.Contains(model.Roles, *in.Role) {
			return nil, ErrUnknownRole
		}
		fields["role"] = *in.Role
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return u, nil
}

// Deactivate disables login without destroying the audit trail rows that
// reference the user.
func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := s.users.UpdateFields(ctx, id, map[string]interface{}{"is_active": false})
	return mapStoreErr(err)
}

func (s *userService) List(ctx context.Context, limit int) ([]*model.User, error) {
	users, err := s.users.List(ctx, limit)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return users, nil
}

type GrantAccessInput struct {
	UserID    uuid.UUID         `json:"user_id"`
	ProjectID uuid.UUID         `json:"project_id"`
	Level     model.AccessLevel `json:"level"`
}

func (s *userService) GrantAccess(ctx context.Context, in GrantAccessInput) (*model.UserProjectAccess, error) {
	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		return nil, mapStoreErr(err)
	}
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	level := in.Level
	if level == "" {
		level = model.AccessView
	}

	grant := &model.UserProjectAccess{
		UserID:    in.UserID,
		ProjectID: in.ProjectID,
		Level:     level,
	}
	if err := s.users.GrantAccess(ctx, grant); err != nil {
		return nil, mapStoreErr(err)
	}
	return grant, nil
}

func (s *userService) RevokeAccess(ctx context.Context, userID, projectID uuid.UUID) error {
	return mapStoreErr(s.users.RevokeAccess(ctx, userID, projectID))
}
