package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devicehub/internal/app/catalog/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFilterRouter(mockService *MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewFilterHandler(mockService)
	router.GET("/filters", h.GetFilters)
	router.PATCH("/filters", h.UpdateFilters)
	router.POST("/filters/reset", h.ResetFilters)

	return router
}

func TestGetFilters_ReturnsCurrentState(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("Filters").Return(entity.DefaultFilters())

	router := setupFilterRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/filters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var filters entity.Filters
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filters))
	assert.Equal(t, entity.SortByName, filters.SortBy)
}

func TestUpdateFilters_PartialMerge(t *testing.T) {
	mockService := new(MockCatalogService)
	merged := entity.DefaultFilters()
	merged.Brand = "Apple"
	mockService.On("SetFilters", mock.AnythingOfType("*entity.UpdateFiltersRequest")).
		Return(merged)

	router := setupFilterRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"brand": "Apple"})
	req, _ := http.NewRequest(http.MethodPatch, "/filters", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var filters entity.Filters
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filters))
	assert.Equal(t, "Apple", filters.Brand)
}

func TestUpdateFilters_InvalidSortKeyRejected(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupFilterRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"sort_by": "weight"})
	req, _ := http.NewRequest(http.MethodPatch, "/filters", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SetFilters", mock.Anything)
}

func TestResetFilters_ReturnsDefaults(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("ResetFilters").Return(entity.DefaultFilters())

	router := setupFilterRouter(mockService)

	req, _ := http.NewRequest(http.MethodPost, "/filters/reset", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var filters entity.Filters
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filters))
	assert.Equal(t, entity.DefaultFilters(), filters)
}
