package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/api/handlers"
	"github.com/dheighten/laundryapi/internal/api/middleware"
	"github.com/dheighten/laundryapi/internal/catalog"
	"github.com/dheighten/laundryapi/internal/config"
	"github.com/dheighten/laundryapi/internal/service"
)

// Services groups the dependencies the handlers need
type Services struct {
	Catalog *catalog.Catalog
	Quote   *service.QuoteService
	Inquiry *service.InquiryService
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/catalog", handlers.HandleGetCatalog(svcs.Catalog, logger))
		v1.POST("/quotes", handlers.HandleCreateQuote(svcs.Quote, logger))
		v1.POST("/inquiries", handlers.HandleCreateInquiry(svcs.Inquiry, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
	}
}
