package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/usecase"
)

type ReportHandler struct {
	ReportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{ReportUsecase: reportUsecase}
}

// GatewayRevenueReport accepts from/to as RFC3339 or YYYY-MM-DD query
// params; either side may be omitted.
func (h *ReportHandler) GatewayRevenueReport(c echo.Context) error {
	from, ok := parseReportTime(c.QueryParam("from"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid from date"})
	}
	to, ok := parseReportTime(c.QueryParam("to"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid to date"})
	}

	report, err := h.ReportUsecase.GatewayRevenueReport(c.Request().Context(), from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	totals, err := h.ReportUsecase.DashboardTotals(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, totals)
}

func parseReportTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
