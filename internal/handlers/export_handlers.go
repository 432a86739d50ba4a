package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler holds the export service.
type ExportHandler struct {
	exportService services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

// GetSQLDump downloads the relational export script as backup.sql.
func (h *ExportHandler) GetSQLDump(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=backup.sql")
	c.Data(http.StatusOK, "application/sql", h.exportService.SQLDump())
}

// GetCSVExport downloads the flat sales export as dados_para_power_bi.csv.
func (h *ExportHandler) GetCSVExport(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=dados_para_power_bi.csv")
	c.Data(http.StatusOK, "text/csv", h.exportService.CSVExport())
}

// GetPDFReport downloads the tabular sales report for an optional
// start_date/end_date window as Relatorio_Vendas_{timestamp}.pdf.
func (h *ExportHandler) GetPDFReport(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	payload, err := h.exportService.PDFReport(from, to)
	if err != nil {
		utils.LogError(err, "GetPDFReport: Error from exportService.PDFReport")
		if errors.Is(err, services.ErrNoSalesForPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No sales in the selected period.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate sales report.", "Internal error"))
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Relatorio_Vendas_%s.pdf", time.Now().Format("20060102_150405")))
	c.Data(http.StatusOK, "application/pdf", payload)
}
