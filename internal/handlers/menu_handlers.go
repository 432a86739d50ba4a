package handlers

import (
	"errors"
	"net/http"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service, which backs both the menu and the
// stock grid editors.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// GetMenu handles fetching the full menu table.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.menuService.GetMenu())
}

// ReplaceMenu handles saving the menu grid: the whole table is replaced and
// the stock table resynchronized.
func (h *MenuHandler) ReplaceMenu(c *gin.Context) {
	var menu []models.MenuItem
	if err := c.ShouldBindJSON(&menu); err != nil {
		utils.LogError(err, "ReplaceMenu: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	saved, err := h.menuService.ReplaceMenu(menu)
	if err != nil {
		utils.LogError(err, "ReplaceMenu: Error from menuService.ReplaceMenu")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save menu.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetStock handles fetching the stock table, pre-synced to the menu.
func (h *MenuHandler) GetStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.menuService.GetStock())
}

// UpdateStock handles saving the stock grid. Only quantities of existing
// products change; the product list itself follows the menu.
func (h *MenuHandler) UpdateStock(c *gin.Context) {
	var changes []models.StockQuantity
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.LogError(err, "UpdateStock: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	saved, err := h.menuService.UpdateStock(changes)
	if err != nil {
		utils.LogError(err, "UpdateStock: Error from menuService.UpdateStock")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid stock quantities.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, saved)
}
