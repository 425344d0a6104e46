package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	reports.GET("/balance", h.getBalanceReport)
}

// getBalanceReport godoc
// @Summary Get the monthly balance report for a year
// @Description Aggregates the user's records into per-month income, expense,
// @Description cash flow, and running balance figures. Defaults to the current
// @Description year; pass accountID to restrict the report to one account.
// @Tags reports
// @Produce json
// @Param year query int false "Report year (defaults to current year)"
// @Param accountID query string false "Restrict to a single account"
// @Success 200 {object} dto.BalanceReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /reports/balance [get]
func (h *reportingHandler) getBalanceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getBalanceReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetBalanceReport(c.Request.Context(), userID, params)
	if err != nil {
		respondWithServiceError(c, err, "Failed to generate balance report")
		return
	}

	c.JSON(http.StatusOK, report)
}
