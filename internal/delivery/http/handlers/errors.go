package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
)

func respondDomainError(c echo.Context, err error) error {
	switch err {
	case domain.ErrSiteNotFound, domain.ErrOrderNotFound, domain.ErrShipmentNotFound,
		domain.ErrGatewayNotFound, domain.ErrProfitNotFound, domain.ErrPartnerNotFound,
		domain.ErrPartnerOrderNotFound:
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case domain.ErrSiteExists, domain.ErrShipmentExists:
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case domain.ErrInvalidOrderTotal:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
