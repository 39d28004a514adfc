package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devicehub/pkg/logger"
	"devicehub/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(
	deviceHandler *DeviceHandler,
	commentHandler *CommentHandler,
	filterHandler *FilterHandler,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware("devicehub"))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "devicehub",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	devices := router.Group("/devices")
	{
		devices.GET("", deviceHandler.GetDevices)
		devices.GET("/:id", deviceHandler.GetDevice)
		devices.POST("", deviceHandler.CreateDevice)
		devices.PUT("/:id", deviceHandler.UpdateDevice)
		devices.DELETE("/:id", deviceHandler.DeleteDevice)
		devices.GET("/:id/comments", commentHandler.GetCommentsByDevice)
	}

	// Бренды вынесены на верхний уровень, чтобы не конфликтовать
	// с маршрутом /devices/:id
	router.GET("/brands", deviceHandler.GetBrands)

	router.POST("/comments", commentHandler.CreateComment)

	filters := router.Group("/filters")
	{
		filters.GET("", filterHandler.GetFilters)
		filters.PATCH("", filterHandler.UpdateFilters)
		filters.POST("/reset", filterHandler.ResetFilters)
	}

	return router
}
