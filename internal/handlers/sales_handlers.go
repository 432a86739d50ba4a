package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SalesHandler holds the sales service.
type SalesHandler struct {
	salesService services.SalesService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(ss services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: ss}
}

// PostSale handles the sale-entry form: decrement stock, append the record,
// persist.
func (h *SalesHandler) PostSale(c *gin.Context) {
	var req services.PostSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "PostSale: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	sale, err := h.salesService.PostSale(req)
	if err != nil {
		utils.LogError(err, "PostSale: Error from salesService.PostSale")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sale.", err.Error()))
		} else if errors.Is(err, services.ErrNotProvisioned) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeNotProvisioned, "Product has no stock record. Add it on the stock tab first.", err.Error()))
		} else if errors.Is(err, services.ErrInsufficientStock) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeInsufficientStock, "Insufficient stock for this product.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to post sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// GetSales lists sales, most recent first. ?limit bounds the result.
func (h *SalesHandler) GetSales(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.salesService.ListSales(limit))
}

// parseLimit reads the optional ?limit query parameter. Responds with a
// validation error and returns false when it is not a non-negative integer.
func parseLimit(c *gin.Context) (int, bool) {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid limit parameter.", "limit must be a non-negative integer"))
		return 0, false
	}
	return limit, true
}
