package handlers

import (
	"errors"
	"net/http"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler holds the purchase service.
type PurchaseHandler struct {
	purchaseService services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(ps services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: ps}
}

// PostPurchase handles the purchase/expense entry form.
func (h *PurchaseHandler) PostPurchase(c *gin.Context) {
	var req services.PostPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "PostPurchase: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.PostPurchase(req)
	if err != nil {
		utils.LogError(err, "PostPurchase: Error from purchaseService.PostPurchase")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Please fill in the description and a positive amount.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to post purchase.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

// GetCategories serves the expense categories the purchase form offers in
// its category selectbox.
func (h *PurchaseHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.ExpenseCategories)
}

// GetPurchases lists purchases, most recent first. ?limit bounds the result.
func (h *PurchaseHandler) GetPurchases(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.purchaseService.ListPurchases(limit))
}
