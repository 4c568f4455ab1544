package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/delivery/http/dto/request"
	"github.com/orderhub/order-hub-service/internal/delivery/http/middleware"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	"github.com/orderhub/order-hub-service/internal/usecase"
	orderdto "github.com/orderhub/order-hub-service/internal/usecase/dto/order"
)

type WebhookHandler struct {
	OrderUsecase usecase.OrderUsecase
	Metrics      *metrics.HubMetrics
}

func NewWebhookHandler(orderUsecase usecase.OrderUsecase, hubMetrics *metrics.HubMetrics) *WebhookHandler {
	return &WebhookHandler{
		OrderUsecase: orderUsecase,
		Metrics:      hubMetrics,
	}
}

// SyncOrder handles the order-sync webhook. Auth already ran; the body is
// re-bound here for the full payload.
func (h *WebhookHandler) SyncOrder(c echo.Context) error {
	started := time.Now()
	defer func() {
		h.Metrics.WebhookDuration.WithLabelValues("order_sync").Observe(time.Since(started).Seconds())
	}()

	site := middleware.SiteFromContext(c)

	var req request.OrderSyncRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if req.Order.WcOrderID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "wc_order_id is required"})
	}

	input := &orderdto.SyncOrderInput{
		SiteID:          site.ID,
		WcOrderID:       req.Order.WcOrderID,
		Status:          req.Order.Status,
		Currency:        req.Order.Currency,
		OrderTotal:      req.Order.OrderTotal,
		Subtotal:        req.Order.Subtotal,
		DiscountTotal:   req.Order.DiscountTotal,
		ShippingTotal:   req.Order.ShippingTotal,
		TaxTotal:        req.Order.TaxTotal,
		GatewayCode:     req.Order.PaymentGateway,
		CustomerName:    req.Order.CustomerName,
		CustomerEmail:   req.Order.CustomerEmail,
		CustomerPhone:   req.Order.CustomerPhone,
		ShippingAddress: string(req.Order.ShippingAddress),
		BillingAddress:  string(req.Order.BillingAddress),
		PlacedAt:        req.Order.PlacedAt,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, orderdto.SyncOrderItem{
			ProductID: item.ProductID,
			Sku:       item.Sku,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
			Total:     item.Total,
		})
	}

	output, err := h.OrderUsecase.SyncOrder(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "order sync failed"})
	}

	resp := map[string]any{
		"ok":       true,
		"order_id": output.OrderID,
	}
	if output.AllocationWarning != "" {
		resp["allocation_warning"] = output.AllocationWarning
	}
	return c.JSON(http.StatusOK, resp)
}

// ShippingUpdate handles the shipping-status webhook.
func (h *WebhookHandler) ShippingUpdate(c echo.Context) error {
	started := time.Now()
	defer func() {
		h.Metrics.WebhookDuration.WithLabelValues("shipping_update").Observe(time.Since(started).Seconds())
	}()

	site := middleware.SiteFromContext(c)

	var req request.ShippingUpdateRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if req.WcOrderID == "" || req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "wc_order_id and status are required"})
	}

	output, err := h.OrderUsecase.ProcessShippingUpdate(c.Request().Context(), &orderdto.ShippingUpdateInput{
		SiteID:         site.ID,
		WcOrderID:      req.WcOrderID,
		Status:         req.Status,
		Provider:       req.Provider,
		TrackingNumber: req.TrackingNumber,
		Payload:        req.Payload,
		OccurredAt:     req.OccurredAt,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":                 true,
		"shipping_update_id": output.ShippingUpdateID,
	})
}
