package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/usecase"
	"github.com/shopspring/decimal"
)

type PartnerHandler struct {
	PartnerUsecase usecase.PartnerUsecase
}

func NewPartnerHandler(partnerUsecase usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{PartnerUsecase: partnerUsecase}
}

type createPartnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *PartnerHandler) CreatePartner(c echo.Context) error {
	var req createPartnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	partner, err := h.PartnerUsecase.CreatePartner(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, partner)
}

func (h *PartnerHandler) ListPartners(c echo.Context) error {
	partners, err := h.PartnerUsecase.ListPartners(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"partners": partners})
}

type assignPartnerRequest struct {
	SiteID          string          `json:"site_id"`
	ShareType       string          `json:"share_type"`
	SharePercentage decimal.Decimal `json:"share_percentage"`
}

func (h *PartnerHandler) AssignPartnerToSite(c echo.Context) error {
	var req assignPartnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	shareType := domain.ShareType(req.ShareType)
	if shareType != domain.ShareTypeRevenue && shareType != domain.ShareTypeProfit {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "share_type must be Revenue or Profit"})
	}

	assignment, err := h.PartnerUsecase.AssignPartnerToSite(c.Request().Context(), req.SiteID, c.Param("id"), shareType, req.SharePercentage)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

func (h *PartnerHandler) ListPartnerOrders(c echo.Context) error {
	partnerOrders, err := h.PartnerUsecase.ListPartnerOrders(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"partner_orders": partnerOrders})
}

func (h *PartnerHandler) MarkPartnerOrderPaid(c echo.Context) error {
	if err := h.PartnerUsecase.MarkPartnerOrderPaid(c.Request().Context(), c.Param("partnerOrderId")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
