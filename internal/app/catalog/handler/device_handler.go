package handler

import (
	"errors"
	"net/http"

	"devicehub/internal/app/catalog/entity"
	"devicehub/internal/app/catalog/service"
	"devicehub/internal/app/catalog/util"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const storageUnavailableMsg = "Catalog storage is temporarily unavailable"

// DeviceHandler обрабатывает HTTP-запросы каталога устройств
type DeviceHandler struct {
	catalogService service.CatalogServiceInterface
	validator      *validator.Validate
}

func NewDeviceHandler(catalogService service.CatalogServiceInterface) *DeviceHandler {
	return &DeviceHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// GetDevices возвращает список устройств, отфильтрованный по текущей
// спецификации фильтров. Query-параметры переопределяют ее поля
// на время запроса, не меняя сохраненное состояние.
func (h *DeviceHandler) GetDevices(c *gin.Context) {
	filters := h.catalogService.Filters()

	if v, ok := c.GetQuery("search"); ok {
		filters.SearchTerm = v
	}
	if v, ok := c.GetQuery("brand"); ok {
		filters.Brand = v
	}
	if v, ok := c.GetQuery("category"); ok {
		filters.Category = v
	}
	if v, ok := c.GetQuery("sort_by"); ok {
		filters.SortBy = v
	}
	if v, ok := c.GetQuery("sort_order"); ok {
		filters.SortOrder = v
	}

	devices, err := h.catalogService.GetFilteredDevices(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get devices"})
		return
	}

	c.JSON(http.StatusOK, entity.DeviceListResponse{
		Devices: devices,
		Total:   len(devices),
		Filters: filters,
	})
}

// GetDevice возвращает устройство по ID
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
		return
	}

	device, err := h.catalogService.GetDevice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get device"})
		return
	}

	c.JSON(http.StatusOK, device)
}

// CreateDevice создает новое устройство в каталоге
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req entity.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	device, err := h.catalogService.CreateDevice(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSpecsMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Specs do not match device category"})
			return
		}
		if errors.Is(err, util.ErrStorage) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": storageUnavailableMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create device"})
		return
	}

	c.JSON(http.StatusCreated, device)
}

// UpdateDevice частично обновляет устройство по ID
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
		return
	}

	var req entity.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	device, err := h.catalogService.UpdateDevice(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		if errors.Is(err, service.ErrSpecsMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Specs do not match device category"})
			return
		}
		if errors.Is(err, util.ErrStorage) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": storageUnavailableMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update device"})
		return
	}

	c.JSON(http.StatusOK, device)
}

// DeleteDevice удаляет устройство и все его комментарии
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
		return
	}

	if err := h.catalogService.DeleteDevice(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		if errors.Is(err, util.ErrStorage) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": storageUnavailableMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete device"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{
		Message: "Device deleted successfully",
	})
}

// GetBrands возвращает список уникальных брендов каталога
func (h *DeviceHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalogService.GetBrands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get brands"})
		return
	}

	c.JSON(http.StatusOK, entity.BrandListResponse{
		Brands: brands,
		Total:  len(brands),
	})
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
