package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devicehub/internal/app/catalog/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCommentRouter(mockService *MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewCommentHandler(mockService)
	router.GET("/devices/:id/comments", h.GetCommentsByDevice)
	router.POST("/comments", h.CreateComment)

	return router
}

func TestGetCommentsByDevice_Success(t *testing.T) {
	// Arrange
	mockService := new(MockCatalogService)
	comments := []entity.Comment{
		{ID: "c1", DeviceID: "1", UserName: "Ana García", Rating: 5, CreatedAt: time.Now()},
		{ID: "c2", DeviceID: "1", UserName: "Carlos Rodríguez", Rating: 4, CreatedAt: time.Now()},
	}
	mockService.On("GetCommentsByDevice", mock.Anything, "1").Return(comments, nil)

	router := setupCommentRouter(mockService)

	// Act
	req, _ := http.NewRequest(http.MethodGet, "/devices/1/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.CommentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, "c1", response.Comments[0].ID)
}

func TestGetCommentsByDevice_UnknownDeviceReturnsEmptyList(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("GetCommentsByDevice", mock.Anything, "no-such-device").
		Return(nil, nil)

	router := setupCommentRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/devices/no-such-device/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.CommentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 0, response.Total)
	assert.NotNil(t, response.Comments)
}

func TestCreateComment_Success(t *testing.T) {
	mockService := new(MockCatalogService)
	created := &entity.Comment{
		ID:       "new-comment",
		DeviceID: "2",
		UserName: "Test User",
		Content:  "Excelente dispositivo",
		Rating:   5,
	}
	mockService.On("CreateComment", mock.Anything, mock.AnythingOfType("*entity.CreateCommentRequest")).
		Return(created, nil)

	router := setupCommentRouter(mockService)

	body, _ := json.Marshal(entity.CreateCommentRequest{
		DeviceID: "2",
		UserName: "Test User",
		Content:  "Excelente dispositivo",
		Rating:   5,
	})
	req, _ := http.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got entity.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "new-comment", got.ID)
}

func TestCreateComment_MissingUserNameSkipsService(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCommentRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{
		"device_id": "2",
		"content":   "Excelente dispositivo",
		"rating":    5,
	})
	req, _ := http.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestCreateComment_RatingOutOfRange(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCommentRouter(mockService)

	body, _ := json.Marshal(entity.CreateCommentRequest{
		DeviceID: "2",
		UserName: "Test User",
		Content:  "Excelente dispositivo",
		Rating:   6,
	})
	req, _ := http.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComment_InvalidEmail(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCommentRouter(mockService)

	body, _ := json.Marshal(entity.CreateCommentRequest{
		DeviceID:  "2",
		UserName:  "Test User",
		UserEmail: "not-an-email",
		Content:   "Excelente dispositivo",
		Rating:    5,
	})
	req, _ := http.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
