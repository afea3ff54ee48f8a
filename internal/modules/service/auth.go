package service

import (
	"context"
	"time"

	"github.com/tpdc055/connectpng/internal/config"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/pkg/utils/secrets"
	"github.com/tpdc055/connectpng/internal/pkg/utils/tokens"
)

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginOutput, error)
	SetupStatus(ctx context.Context) (*SetupStatusOutput, error)
	CreateAdmin(ctx context.Context, in CreateAdminInput) (*model.User, error)
}

type authService struct {
	users repo.UserRepo
	cfg   *config.Config
}

func NewAuthService(users repo.UserRepo, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginOutput struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, ErrInvalidCredentials
	}
	if !secrets.VerifyPassword(in.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrUserDisabled
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHour) * time.Hour
	token, err := tokens.Issue(u, s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		User:      u,
	}, nil
}

type SetupStatusOutput struct {
	NeedsSetup bool `json:"needs_setup"`
}

// SetupStatus reports whether the instance still needs its first admin.
func (s *authService) SetupStatus(ctx context.Context) (*SetupStatusOutput, error) {
	n, err := s.users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &SetupStatusOutput{NeedsSetup: n == 0}, nil
}

type CreateAdminInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateAdmin bootstraps the first admin account. It is unauthenticated and
// refuses to run once any admin exists.
func (s *authService) CreateAdmin(ctx context.Context, in CreateAdminInput) (*model.User, error) {
	n, err := s.users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAdminExists
	}
	if len(in.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := secrets.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, mapStoreErr(err)
	}
	return u, nil
}
