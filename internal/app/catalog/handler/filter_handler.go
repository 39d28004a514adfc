package handler

import (
	"net/http"

	"devicehub/internal/app/catalog/entity"
	"devicehub/internal/app/catalog/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FilterHandler обрабатывает HTTP-запросы спецификации фильтров
type FilterHandler struct {
	catalogService service.CatalogServiceInterface
	validator      *validator.Validate
}

func NewFilterHandler(catalogService service.CatalogServiceInterface) *FilterHandler {
	return &FilterHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// GetFilters возвращает текущую спецификацию фильтров
func (h *FilterHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Filters())
}

// UpdateFilters частично обновляет спецификацию: непереданные поля
// сохраняют текущее значение
func (h *FilterHandler) UpdateFilters(c *gin.Context) {
	var req entity.UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	c.JSON(http.StatusOK, h.catalogService.SetFilters(&req))
}

// ResetFilters сбрасывает спецификацию к значениям по умолчанию
func (h *FilterHandler) ResetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ResetFilters())
}
