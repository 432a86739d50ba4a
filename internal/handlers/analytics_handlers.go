package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pizzeria_backend/internal/services"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// AnalyticsHandler holds the analytics service.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// GetSummary aggregates sales for the dashboard. start_date and end_date are
// YYYY-MM-DD and both inclusive at day granularity; either may be omitted.
// ?top bounds the product rankings.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	top := 0
	if topStr := c.Query("top"); topStr != "" {
		parsed, err := strconv.Atoi(topStr)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid top parameter.", "top must be a positive integer"))
			return
		}
		top = parsed
	}

	c.JSON(http.StatusOK, h.analyticsService.Summary(from, to, top, top))
}

// parseDateRange reads the optional start_date/end_date query parameters
// (YYYY-MM-DD, both inclusive) into a half-open [from, to) window. Responds
// with a bad-request error and returns false on a malformed date.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	var from time.Time
	// End of the open range: one day past end_date, so end_date itself is
	// fully included.
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	if startStr := c.Query("start_date"); startStr != "" {
		parsed, err := time.Parse(reportDateLayout, startStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid start_date format. Use YYYY-MM-DD.", err.Error()))
			return from, to, false
		}
		from = parsed
	}
	if endStr := c.Query("end_date"); endStr != "" {
		parsed, err := time.Parse(reportDateLayout, endStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid end_date format. Use YYYY-MM-DD.", err.Error()))
			return from, to, false
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, true
}

// GetRange reports the span of analyzable sales, used to seed the dashboard
// date pickers and its empty-state warnings.
func (h *AnalyticsHandler) GetRange(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.Range())
}
