package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/usecase"
	"github.com/shopspring/decimal"
)

type GatewayHandler struct {
	GatewayUsecase usecase.GatewayUsecase
}

func NewGatewayHandler(gatewayUsecase usecase.GatewayUsecase) *GatewayHandler {
	return &GatewayHandler{GatewayUsecase: gatewayUsecase}
}

type createGatewayRequest struct {
	GatewayCode    string           `json:"gateway_code"`
	Descriptor     string           `json:"descriptor"`
	FeeType        string           `json:"fee_type"`
	FeesPercentage *decimal.Decimal `json:"fees_percentage"`
	FeesFixed      *decimal.Decimal `json:"fees_fixed"`
}

func (h *GatewayHandler) CreateGateway(c echo.Context) error {
	var req createGatewayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	feeType := domain.FeeType(req.FeeType)
	if feeType != domain.FeeTypePercentage && feeType != domain.FeeTypeFixed {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "fee_type must be percentage or fixed"})
	}

	details, err := h.GatewayUsecase.CreateGateway(c.Request().Context(), &domain.PaymentGatewayDetails{
		GatewayCode:    req.GatewayCode,
		Descriptor:     req.Descriptor,
		FeeType:        feeType,
		FeesPercentage: req.FeesPercentage,
		FeesFixed:      req.FeesFixed,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, details)
}

func (h *GatewayHandler) ListGateways(c echo.Context) error {
	gateways, err := h.GatewayUsecase.ListGateways(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"gateways": gateways})
}

type createGatewayPartnerRequest struct {
	PartnerName string `json:"partner_name"`
	PartnerCode string `json:"partner_code"`
}

func (h *GatewayHandler) CreateGatewayPartner(c echo.Context) error {
	var req createGatewayPartnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	partner, err := h.GatewayUsecase.CreateGatewayPartner(c.Request().Context(), req.PartnerName, req.PartnerCode)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, partner)
}

type assignGatewayPartnerRequest struct {
	GatewayCode          string          `json:"gateway_code"`
	AssignmentPercentage decimal.Decimal `json:"assignment_percentage"`
}

func (h *GatewayHandler) AssignGatewayPartner(c echo.Context) error {
	var req assignGatewayPartnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	assignment, err := h.GatewayUsecase.AssignGatewayPartner(c.Request().Context(), c.Param("id"), req.GatewayCode, req.AssignmentPercentage)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

type createSiteGatewayRequest struct {
	SiteID              string          `json:"site_id"`
	GatewayCode         string          `json:"gateway_code"`
	WebsiteSharePercent decimal.Decimal `json:"website_share_percent"`
}

func (h *GatewayHandler) CreateSiteGateway(c echo.Context) error {
	var req createSiteGatewayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	sg, err := h.GatewayUsecase.CreateSiteGateway(c.Request().Context(), req.SiteID, req.GatewayCode, req.WebsiteSharePercent)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, sg)
}
