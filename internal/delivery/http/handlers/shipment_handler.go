package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/usecase"
)

type ShipmentHandler struct {
	ShipmentUsecase usecase.ShipmentUsecase
}

func NewShipmentHandler(shipmentUsecase usecase.ShipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{ShipmentUsecase: shipmentUsecase}
}

type createShipmentRequest struct {
	OrderID        string `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
	TrackingURL    string `json:"tracking_url"`
	Notes          string `json:"notes"`
}

func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if req.OrderID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "order_id is required"})
	}

	shipment, err := h.ShipmentUsecase.CreateShipment(c.Request().Context(), &domain.Shipment{
		OrderID:        req.OrderID,
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
		TrackingURL:    req.TrackingURL,
		Notes:          req.Notes,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentHandler) GetShipmentByOrder(c echo.Context) error {
	shipment, err := h.ShipmentUsecase.GetShipmentByOrderID(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) ListShipments(c echo.Context) error {
	shipments, err := h.ShipmentUsecase.ListShipments(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"shipments": shipments})
}

func (h *ShipmentHandler) RefreshShipment(c echo.Context) error {
	result, err := h.ShipmentUsecase.RefreshShipment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) RefreshAllShipments(c echo.Context) error {
	result, err := h.ShipmentUsecase.RefreshAllShipments(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ShipmentHandler) DeleteShipment(c echo.Context) error {
	if err := h.ShipmentUsecase.DeleteShipment(c.Request().Context(), c.Param("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
