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

	"github.com/tpdc055/connectpng/internal/middleware"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

// MockQualityService is a mock implementation of QualityService
type MockQualityService struct {
	mock.Mock
}

func (m *MockQualityService) Create(ctx context.Context, in service.CreateQualityReportInput) (*model.QualityReport, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QualityReport), args.Error(1)
}

func (m *MockQualityService) Get(ctx context.Context, id uuid.UUID) (*model.QualityReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QualityReport), args.Error(1)
}

func (m *MockQualityService) Update(ctx context.Context, id uuid.UUID, in service.UpdateQualityReportInput) (*model.QualityReport, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QualityReport), args.Error(1)
}

func (m *MockQualityService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQualityService) List(ctx context.Context, f repo.QualityReportFilter) ([]*model.QualityReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QualityReport), args.Error(1)
}

func setupQualityRouter(h *QualityHandler, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.UserKey, user) })
	r.POST("/quality-reports", h.CreateReport)
	r.GET("/quality-reports", h.ListReports)
	r.GET("/quality-reports/:id", h.GetReport)
	r.DELETE("/quality-reports/:id", h.DeleteReport)
	return r
}

func TestQualityHandler_CreateReport_SetsInspector(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleQaQcOfficer}
	projectID := uuid.New()

	mockService := &MockQualityService{}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateQualityReportInput) bool {
		return in.ProjectID == projectID &&
			in.InspectorID != nil && *in.InspectorID == user.ID
	})).Return(&model.QualityReport{ID: uuid.New(), ProjectID: projectID}, nil)

	router := setupQualityRouter(NewQualityHandler(mockService), user)

	body := `{"project_id":"` + projectID.String() + `","report_type":"MATERIAL_TEST","qa_qc_status":"PASS"}`
	req := httptest.NewRequest("POST", "/quality-reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestQualityHandler_CreateReport_MissingReportType(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleQaQcOfficer}

	mockService := &MockQualityService{}
	router := setupQualityRouter(NewQualityHandler(mockService), user)

	body := `{"project_id":"` + uuid.NewString() + `","qa_qc_status":"PASS"}`
	req := httptest.NewRequest("POST", "/quality-reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ReportType")
	mockService.AssertNotCalled(t, "Create")
}

func TestQualityHandler_GetReport(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleQaQcOfficer}
	id := uuid.New()

	tests := []struct {
		name           string
		path           string
		setup          func(*MockQualityService)
		expectedStatus int
	}{
		{
			name: "found",
			path: "/quality-reports/" + id.String(),
			setup: func(svc *MockQualityService) {
				svc.On("Get", mock.Anything, id).Return(&model.QualityReport{ID: id}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/quality-reports/" + id.String(),
			setup: func(svc *MockQualityService) {
				svc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			path:           "/quality-reports/not-a-uuid",
			setup:          func(svc *MockQualityService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockQualityService{}
			tt.setup(mockService)

			router := setupQualityRouter(NewQualityHandler(mockService), user)

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestQualityHandler_ListReports_Filters(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleQaQcOfficer}
	projectID := uuid.New()

	mockService := &MockQualityService{}
	mockService.On("List", mock.Anything, mock.MatchedBy(func(f repo.QualityReportFilter) bool {
		return f.ProjectID != nil && *f.ProjectID == projectID &&
			f.QaQcStatus != nil && *f.QaQcStatus == model.QaQcFail &&
			f.Range.Start != nil && f.Range.Start.Format("2006-01-02") == "2025-01-01"
	})).Return([]*model.QualityReport{}, nil)

	router := setupQualityRouter(NewQualityHandler(mockService), user)

	url := "/quality-reports?projectId=" + projectID.String() + "&qaQcStatus=FAIL&startDate=2025-01-01"
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestQualityHandler_ListReports_DateOnlyEndCoversWholeDay(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleQaQcOfficer}

	endOfDay := time.Date(2025, time.January, 31, 23, 59, 59, 999999999, time.UTC)
	mockService := &MockQualityService{}
	mockService.On("List", mock.Anything, mock.MatchedBy(func(f repo.QualityReportFilter) bool {
		return f.Range.End != nil && f.Range.End.Equal(endOfDay)
	})).Return([]*model.QualityReport{}, nil)

	router := setupQualityRouter(NewQualityHandler(mockService), user)

	req := httptest.NewRequest("GET", "/quality-reports?endDate=2025-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestQualityHandler_DeleteReport(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleAdmin}
	id := uuid.New()

	mockService := &MockQualityService{}
	mockService.On("Delete", mock.Anything, id).Return(nil)

	router := setupQualityRouter(NewQualityHandler(mockService), user)

	req := httptest.NewRequest("DELETE", "/quality-reports/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
