package api

import (
	"net/http"

	"api_vendas/internal/config"
	"api_vendas/internal/sales"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes builds the production wiring: file-backed storage, the
// Supabase mirror when configured, and all sales endpoints on the given
// Gin engine.
func InitRoutes(e *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	storage, err := sales.NewFileStorage(cfg.DataFile)
	if err != nil {
		return err
	}

	var mirror sales.Mirror = sales.NoopMirror{}
	if cfg.SupabaseURL != "" {
		mirror = sales.NewSupabaseMirror(cfg.SupabaseURL, cfg.SupabaseKey, cfg.MirrorTable, logger)
	} else {
		logger.Warn("no supabase url configured, mirror writes disabled")
	}

	salesService := sales.NewService(storage, mirror, logger)
	RegisterRoutes(e, salesService, logger)
	return nil
}

// RegisterRoutes binds each HTTP method and path to the appropriate
// handler function. Tests call it directly with their own service
// wiring.
func RegisterRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger) {
	e.Use(cors.Default())
	e.Use(Recovery(logger))

	salesHandler := NewSalesHandler(salesService, logger)

	apiGroup := e.Group("/api")
	apiGroup.GET("/sales", salesHandler.handleListSales)
	apiGroup.POST("/sales", salesHandler.handleCreateSale)
	apiGroup.GET("/sales/:id", salesHandler.handleGetSale)
	apiGroup.PUT("/sales/:id", salesHandler.handleUpdateSale)
	apiGroup.DELETE("/sales/:id", salesHandler.handleDeleteSale)
	apiGroup.GET("/reports", salesHandler.handleReports)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
		})
	})
}

// Recovery converts handler panics into the standard 500 envelope
// instead of leaking internals to the caller.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("unhandled panic in handler", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	})
}
