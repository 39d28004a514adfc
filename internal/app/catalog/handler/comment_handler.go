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

// CommentHandler обрабатывает HTTP-запросы комментариев
type CommentHandler struct {
	catalogService service.CatalogServiceInterface
	validator      *validator.Validate
}

func NewCommentHandler(catalogService service.CatalogServiceInterface) *CommentHandler {
	return &CommentHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// GetCommentsByDevice возвращает комментарии устройства в порядке
// вставки. Для неизвестного устройства возвращается пустой список.
func (h *CommentHandler) GetCommentsByDevice(c *gin.Context) {
	deviceID := c.Param("id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
		return
	}

	comments, err := h.catalogService.GetCommentsByDevice(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comments"})
		return
	}

	if comments == nil {
		comments = []entity.Comment{}
	}

	c.JSON(http.StatusOK, entity.CommentListResponse{
		Comments: comments,
		Total:    len(comments),
	})
}

// CreateComment создает комментарий к устройству
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req entity.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	comment, err := h.catalogService.CreateComment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, util.ErrStorage) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": storageUnavailableMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
