package api

import (
	"errors"
	"net/http"
	"strconv"

	"api_vendas/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// salesHandler holds the sales service and implements HTTP handlers for
// sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// respondError maps error kinds to HTTP statuses. Internal diagnostics
// never reach the caller; only validation text is user-facing.
func (h *salesHandler) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, sales.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, sales.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
	case errors.Is(err, sales.ErrMirror):
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating sale"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}

// handleListSales handles GET /api/sales with optional date,
// paymentMethod and limit filters.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	date := ctx.Query("date")
	paymentMethod := ctx.Query("paymentMethod")

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	results, err := h.salesService.SearchSales(date, paymentMethod, limit)
	if err != nil {
		h.logger.Error("failed to search sales",
			zap.String("date_filter", date),
			zap.String("payment_method_filter", paymentMethod),
			zap.Error(err),
		)
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
		"total":   len(results),
	})
}

// handleCreateSale handles POST /api/sales.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var input sales.CreateSaleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	sale, err := h.salesService.CreateSale(input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Sale created successfully",
		"data":    sale,
	})
}

// handleGetSale handles GET /api/sales/:id.
func (h *salesHandler) handleGetSale(ctx *gin.Context) {
	sale, err := h.salesService.GetSale(ctx.Param("id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": sale})
}

// handleUpdateSale handles PUT /api/sales/:id with a partial payload.
func (h *salesHandler) handleUpdateSale(ctx *gin.Context) {
	var input sales.UpdateSaleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	sale, err := h.salesService.UpdateSale(ctx.Param("id"), input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sale updated successfully",
		"data":    sale,
	})
}

// handleDeleteSale handles DELETE /api/sales/:id and returns the
// removed record.
func (h *salesHandler) handleDeleteSale(ctx *gin.Context) {
	removed, err := h.salesService.DeleteSale(ctx.Param("id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sale removed successfully",
		"data":    removed,
	})
}

// handleReports handles GET /api/reports.
func (h *salesHandler) handleReports(ctx *gin.Context) {
	report, err := h.salesService.Report()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}
