package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, in service.LoginInput) (*service.LoginOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginOutput), args.Error(1)
}

func (m *MockAuthService) SetupStatus(ctx context.Context) (*service.SetupStatusOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SetupStatusOutput), args.Error(1)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, in service.CreateAdminInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupAuthRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/setup/status", h.SetupStatus)
	r.POST("/api/setup/create-admin", h.CreateAdmin)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: `{"email":"kila@works.gov.pg","password":"correct-horse"}`,
			setup: func(svc *MockAuthService) {
				out := &service.LoginOutput{
					Token:     "signed.jwt.token",
					ExpiresAt: time.Now().Add(time.Hour),
					User:      &model.User{ID: uuid.New(), Email: "kila@works.gov.pg"},
				}
				svc.On("Login", mock.Anything, service.LoginInput{Email: "kila@works.gov.pg", Password: "correct-horse"}).Return(out, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: `{"email":"kila@works.gov.pg","password":"nope"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "disabled account",
			body: `{"email":"former@works.gov.pg","password":"correct-horse"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, mock.Anything).Return(nil, service.ErrUserDisabled)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"email":"kila@works.gov.pg"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           `{"email":"not-an-email","password":"x"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAuthService{}
			tt.setup(mockService)

			router := setupAuthRouter(NewAuthHandler(mockService))

			req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)

			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "signed.jwt.token")
			}
		})
	}
}

func TestAuthHandler_SetupStatus(t *testing.T) {
	mockService := &MockAuthService{}
	mockService.On("SetupStatus", mock.Anything).Return(&service.SetupStatusOutput{NeedsSetup: true}, nil)

	router := setupAuthRouter(NewAuthHandler(mockService))

	req := httptest.NewRequest("GET", "/api/setup/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"needs_setup":true}`, w.Body.String())
}

func TestAuthHandler_CreateAdmin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "first admin created",
			body: `{"name":"Admin","email":"admin@works.gov.pg","password":"first-admin-pass"}`,
			setup: func(svc *MockAuthService) {
				u := &model.User{ID: uuid.New(), Email: "admin@works.gov.pg", Role: model.RoleAdmin}
				svc.On("CreateAdmin", mock.Anything, mock.Anything).Return(u, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "admin already exists",
			body: `{"name":"Admin","email":"admin@works.gov.pg","password":"first-admin-pass"}`,
			setup: func(svc *MockAuthService) {
				svc.On("CreateAdmin", mock.Anything, mock.Anything).Return(nil, service.ErrAdminExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "password too short",
			body: `{"name":"Admin","email":"admin@works.gov.pg","password":"short"}`,
			setup: func(svc *MockAuthService) {
				svc.On("CreateAdmin", mock.Anything, mock.Anything).Return(nil, service.ErrPasswordTooShort)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAuthService{}
			tt.setup(mockService)

			router := setupAuthRouter(NewAuthHandler(mockService))

			req := httptest.NewRequest("POST", "/api/setup/create-admin", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
