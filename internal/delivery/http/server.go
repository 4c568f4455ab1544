package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/orderhub/order-hub-service/internal/delivery/http/handlers"
	"github.com/orderhub/order-hub-service/internal/delivery/http/middleware"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	"github.com/orderhub/order-hub-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Server struct {
	echo *echo.Echo
	log  *logrus.Logger
}

type Handlers struct {
	Webhook  *handlers.WebhookHandler
	Site     *handlers.SiteHandler
	Order    *handlers.OrderHandler
	Partner  *handlers.PartnerHandler
	Gateway  *handlers.GatewayHandler
	Profit   *handlers.ProfitHandler
	Shipment *handlers.ShipmentHandler
	Report   *handlers.ReportHandler
}

func NewServer(auth usecase.WebhookAuthUsecase, hubMetrics *metrics.HubMetrics, h Handlers, log *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	webhook := e.Group("/webhook")
	webhook.POST("/order-sync", h.Webhook.SyncOrder,
		middleware.WebhookAuth(auth, hubMetrics, "order_sync", false))
	webhook.POST("/shipping-update", h.Webhook.ShippingUpdate,
		middleware.WebhookAuth(auth, hubMetrics, "shipping_update", true))

	api := e.Group("/api/v1")

	api.POST("/sites", h.Site.CreateSite)
	api.GET("/sites", h.Site.ListSites)
	api.GET("/sites/:id", h.Site.GetSite)
	api.PATCH("/sites/:id/active", h.Site.SetSiteActive)

	api.GET("/orders", h.Order.ListOrders)
	api.GET("/orders/:id", h.Order.GetOrder)

	api.POST("/partners", h.Partner.CreatePartner)
	api.GET("/partners", h.Partner.ListPartners)
	api.POST("/partners/:id/assignments", h.Partner.AssignPartnerToSite)
	api.GET("/partners/:id/orders", h.Partner.ListPartnerOrders)
	api.POST("/partner-orders/:partnerOrderId/paid", h.Partner.MarkPartnerOrderPaid)

	api.POST("/gateways", h.Gateway.CreateGateway)
	api.GET("/gateways", h.Gateway.ListGateways)
	api.POST("/gateway-partners", h.Gateway.CreateGatewayPartner)
	api.POST("/gateway-partners/:id/assignments", h.Gateway.AssignGatewayPartner)
	api.POST("/site-gateways", h.Gateway.CreateSiteGateway)

	api.POST("/orders/:id/costs", h.Profit.RecordCosts)
	api.POST("/orders/:id/payout-status", h.Profit.UpdatePayoutStatus)
	api.GET("/orders/:id/profit", h.Profit.GetProfit)
	api.GET("/profit/stats", h.Profit.GetProfitStats)

	api.POST("/shipments", h.Shipment.CreateShipment)
	api.GET("/shipments", h.Shipment.ListShipments)
	api.GET("/orders/:orderId/shipment", h.Shipment.GetShipmentByOrder)
	api.POST("/shipments/:id/refresh", h.Shipment.RefreshShipment)
	api.POST("/shipments/refresh-all", h.Shipment.RefreshAllShipments)
	api.DELETE("/shipments/:id", h.Shipment.DeleteShipment)

	api.GET("/reports/gateway-revenue", h.Report.GatewayRevenueReport)
	api.GET("/reports/dashboard", h.Report.Dashboard)

	return &Server{echo: e, log: log}
}

func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("http server starting")
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
