package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/usecase"
	"github.com/shopspring/decimal"
)

type ProfitHandler struct {
	ProfitUsecase usecase.ProfitUsecase
}

func NewProfitHandler(profitUsecase usecase.ProfitUsecase) *ProfitHandler {
	return &ProfitHandler{ProfitUsecase: profitUsecase}
}

type recordCostsRequest struct {
	ProductCost           decimal.Decimal `json:"product_cost"`
	GatewayCostPercentage decimal.Decimal `json:"gateway_cost_percentage"`
}

func (h *ProfitHandler) RecordCosts(c echo.Context) error {
	var req recordCostsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}

	profit, err := h.ProfitUsecase.RecordOrderCosts(c.Request().Context(), c.Param("id"), req.ProductCost, req.GatewayCostPercentage)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, profit)
}

type payoutStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *ProfitHandler) UpdatePayoutStatus(c echo.Context) error {
	var req payoutStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status is required"})
	}

	profit, err := h.ProfitUsecase.UpdatePayoutStatus(c.Request().Context(), c.Param("id"), domain.PayoutStatus(req.Status), req.Notes)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, profit)
}

func (h *ProfitHandler) GetProfit(c echo.Context) error {
	profit, err := h.ProfitUsecase.GetProfitByOrderID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, profit)
}

func (h *ProfitHandler) GetProfitStats(c echo.Context) error {
	overall, perSite, err := h.ProfitUsecase.GetProfitStats(c.Request().Context(), c.QueryParam("site_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"overall":  overall,
		"per_site": perSite,
	})
}
