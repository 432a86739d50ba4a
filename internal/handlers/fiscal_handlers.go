package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FiscalHandler holds the fiscal document service.
type FiscalHandler struct {
	fiscalService services.FiscalService
}

// NewFiscalHandler creates a new FiscalHandler.
func NewFiscalHandler(fs services.FiscalService) *FiscalHandler {
	return &FiscalHandler{fiscalService: fs}
}

// GetNFCe renders the NFC-e XML for one sale, downloaded as nfce_{id}.xml.
func (h *FiscalHandler) GetNFCe(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid sale ID.", "sale ID must be a non-negative integer"))
		return
	}

	payload, err := h.fiscalService.GenerateNFCe(id)
	if err != nil {
		utils.LogError(err, "GetNFCe: Error from fiscalService.GenerateNFCe")
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale not found.", err.Error()))
		} else if errors.Is(err, services.ErrSaleItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "The product of this sale is no longer on the menu.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate fiscal document.", "Internal error"))
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=nfce_%d.xml", id))
	c.Data(http.StatusOK, "application/xml", payload)
}

// GetDailyArchive bundles every document of the current calendar day into
// one zip, downloaded as XMLs_{YYYYMMDD}.zip.
func (h *FiscalHandler) GetDailyArchive(c *gin.Context) {
	day := time.Now()

	payload, count, err := h.fiscalService.GenerateDailyArchive(day)
	if err != nil {
		utils.LogError(err, "GetDailyArchive: Error from fiscalService.GenerateDailyArchive")
		if errors.Is(err, services.ErrNoSalesForDay) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No sales registered today.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate fiscal archive.", "Internal error"))
		}
		return
	}

	utils.LogInfo("Generated daily fiscal archive", map[string]interface{}{"documents": count})
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=XMLs_%s.zip", day.Format("20060102")))
	c.Data(http.StatusOK, "application/zip", payload)
}
