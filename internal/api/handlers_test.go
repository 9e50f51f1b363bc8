package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jpsrealtor/cma/internal/models"
	"jpsrealtor/cma/internal/report"
)

// MockStore is a mock implementation of comps.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetPropertyByKey(ctx context.Context, key string) (*models.Property, error) {
	args := m.Called(ctx, key)
	p, _ := args.Get(0).(*models.Property)
	return p, args.Error(1)
}

func (m *MockStore) GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*models.Property)
	return p, args.Error(1)
}

func (m *MockStore) SearchComparables(ctx context.Context, filter models.ComparableFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	props, _ := args.Get(0).([]models.Property)
	return props, args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }

func setupRouter(store *MockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	service := report.NewService(store, models.Tolerances{}, models.AssumptionOverrides{}, logger)
	handler := NewHandler(service, report.NewBatchProcessor(service, 2, 3), logger)

	router := gin.New()
	SetupRoutes(router, handler, []string{"*"})
	return router
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func subject() *models.Property {
	return &models.Property{
		ListingKey:     "SUBJECT",
		StandardStatus: models.StatusActive,
		ListPrice:      floatPtr(400000),
		LivingArea:     floatPtr(1600),
	}
}

func comparables() []models.Property {
	return []models.Property{
		{ListingKey: "C1", StandardStatus: models.StatusClosed, ClosePrice: floatPtr(390000), LivingArea: floatPtr(1600)},
		{ListingKey: "C2", StandardStatus: models.StatusActive, ListPrice: floatPtr(410000), LivingArea: floatPtr(1600)},
	}
}

func TestHealth(t *testing.T) {
	router := setupRouter(&MockStore{})

	w := doRequest(router, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGenerateCMA(t *testing.T) {
	store := &MockStore{}
	store.On("GetPropertyByKey", mock.Anything, "SUBJECT").Return(subject(), nil)
	store.On("SearchComparables", mock.Anything, mock.Anything).Return(comparables(), nil)
	router := setupRouter(store)

	w := doRequest(router, http.MethodPost, "/api/cma", `{"listing_key":"SUBJECT"}`,
		map[string]string{UserHeader: "agent@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CMAReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "agent@example.com", resp.GeneratedBy)
	assert.Equal(t, 2, resp.Metrics.CompCount)
	assert.Len(t, resp.Comps, 2)
	require.NotNil(t, resp.EstimatedValue)
	assert.Equal(t, 400000.0, resp.EstimatedValue.EstimatedPrice)
	assert.Nil(t, resp.Investment)
}

func TestGenerateCMAErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockStore)
		wantStatus int
		wantKind   string
	}{
		{
			name:       "malformed body",
			body:       `{"listing_key":`,
			setup:      func(*MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "no subject reference",
			body:       `{}`,
			setup:      func(*MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "invalid tolerance",
			body:       `{"listing_key":"SUBJECT","max_comps":500}`,
			setup:      func(*MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name: "unknown listing",
			body: `{"listing_key":"MISSING"}`,
			setup: func(m *MockStore) {
				m.On("GetPropertyByKey", mock.Anything, "MISSING").Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name: "datastore failure",
			body: `{"listing_key":"SUBJECT"}`,
			setup: func(m *MockStore) {
				m.On("GetPropertyByKey", mock.Anything, "SUBJECT").Return(subject(), nil)
				m.On("SearchComparables", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantKind:   "datastore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{}
			tt.setup(store)
			router := setupRouter(store)

			w := doRequest(router, http.MethodPost, "/api/cma", tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Success bool `json:"success"`
				Error   struct {
					Kind    string `json:"kind"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestGenerateBatchCMA(t *testing.T) {
	store := &MockStore{}
	store.On("GetPropertyByKey", mock.Anything, "SUBJECT").Return(subject(), nil)
	store.On("GetPropertyByKey", mock.Anything, "MISSING").Return(nil, nil)
	store.On("SearchComparables", mock.Anything, mock.Anything).Return(comparables(), nil)
	router := setupRouter(store)

	body := `{"requests":[{"listing_key":"SUBJECT"},{"listing_key":"MISSING"}]}`
	w := doRequest(router, http.MethodPost, "/api/cma/batch", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Results []report.BatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	require.NotNil(t, resp.Results[0].Report)
	assert.Equal(t, report.AnonymousUser, resp.Results[0].Report.GeneratedBy)
	require.NotNil(t, resp.Results[1].Error)
	assert.Equal(t, report.KindNotFound, resp.Results[1].Error.Kind)
}

func TestGenerateBatchCMATooLarge(t *testing.T) {
	router := setupRouter(&MockStore{})

	body := `{"requests":[{"listing_key":"A"},{"listing_key":"B"},{"listing_key":"C"},{"listing_key":"D"}]}`
	w := doRequest(router, http.MethodPost, "/api/cma/batch", body, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(&MockStore{})

	req := httptest.NewRequest(http.MethodOptions, "/api/cma", nil)
	req.Header.Set("Origin", "https://app.other.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
