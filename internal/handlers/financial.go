package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/ship-management-api/internal/httperr"
	"github.com/fleetops/ship-management-api/internal/services"
)

type FinancialHandler struct {
	financialService *services.FinancialService
}

func NewFinancialHandler(financialService *services.FinancialService) *FinancialHandler {
	return &FinancialHandler{financialService: financialService}
}

func (h *FinancialHandler) report(c *gin.Context, operation string, isSummary bool) {
	shipCode := c.Query("shipCode")
	period := c.Query("period")

	lines, err := h.financialService.GetReport(shipCode, period, isSummary)
	if err != nil {
		httperr.Respond(c, operation, err, logrus.Fields{
			"ship_code": shipCode,
			"period":    period,
		})
		return
	}
	c.JSON(http.StatusOK, lines)
}

// GetReport godoc
// @Summary Financial report for a ship and period
// @Tags financial
// @Produce json
// @Param shipCode query string true "Ship code"
// @Param period query string true "Reporting period (YYYY-MM)"
// @Param isSummary query bool false "Roll up by account group"
// @Success 200 {array} dto.FinancialReportLineDTO
// @Failure 400 {object} httperr.APIError
// @Router /financial/report [get]
func (h *FinancialHandler) GetReport(c *gin.Context) {
	isSummary, _ := strconv.ParseBool(c.DefaultQuery("isSummary", "false"))
	h.report(c, "GetFinancialReport", isSummary)
}

// GetReportSummary godoc
// @Summary Financial report rolled up by account group
// @Tags financial
// @Produce json
// @Param shipCode query string true "Ship code"
// @Param period query string true "Reporting period (YYYY-MM)"
// @Success 200 {array} dto.FinancialReportLineDTO
// @Failure 400 {object} httperr.APIError
// @Router /financial/report/summary [get]
func (h *FinancialHandler) GetReportSummary(c *gin.Context) {
	h.report(c, "GetFinancialReportSummary", true)
}

// GetReportDetail godoc
// @Summary Financial report with one line per leaf account
// @Tags financial
// @Produce json
// @Param shipCode query string true "Ship code"
// @Param period query string true "Reporting period (YYYY-MM)"
// @Success 200 {array} dto.FinancialReportLineDTO
// @Failure 400 {object} httperr.APIError
// @Router /financial/report/detail [get]
func (h *FinancialHandler) GetReportDetail(c *gin.Context) {
	h.report(c, "GetFinancialReportDetail", false)
}
