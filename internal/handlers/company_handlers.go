package handlers

import (
	"net/http"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CompanyHandler holds the company service.
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(cs services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: cs}
}

// GetCompany handles fetching the company profile.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	c.JSON(http.StatusOK, h.companyService.Get())
}

// UpdateCompany handles saving the company profile form.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var profile models.CompanyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.LogError(err, "UpdateCompany: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	saved, err := h.companyService.Update(profile)
	if err != nil {
		utils.LogError(err, "UpdateCompany: Error from companyService.Update")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save company profile.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, saved)
}
