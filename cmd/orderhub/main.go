package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/orderhub/order-hub-service/internal/app/background"
	"github.com/orderhub/order-hub-service/internal/config"
	httpserver "github.com/orderhub/order-hub-service/internal/delivery/http"
	"github.com/orderhub/order-hub-service/internal/delivery/http/handlers"
	"github.com/orderhub/order-hub-service/internal/infrastructure/crypto"
	"github.com/orderhub/order-hub-service/internal/infrastructure/kafka"
	"github.com/orderhub/order-hub-service/internal/infrastructure/logger"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	"github.com/orderhub/order-hub-service/internal/infrastructure/migrate"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/repository"
	"github.com/orderhub/order-hub-service/internal/infrastructure/tracking"
	"github.com/orderhub/order-hub-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	appLog := logger.New(cfg.LogConfig)
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.HubDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.HubDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Secret cipher for site API secrets
	cipher, err := crypto.NewSecretCipher(cfg.Secrets.SiteSecretsKey)
	if err != nil {
		log.Fatalf("failed to init secret cipher: %v", err)
	}

	// Event publisher
	var eventPublisher kafka.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		eventPublisher = kafka.NewKafkaPublisher([]string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)})
	}

	hubMetrics := metrics.NewHubMetrics()

	// Repositories
	siteRepo := repository.NewDefaultSiteRepository(db)
	nonceRepo := repository.NewDefaultNonceRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	shippingUpdateRepo := repository.NewDefaultShippingUpdateRepository(db)
	partnerRepo := repository.NewDefaultPartnerRepository(db)
	partnerOrderRepo := repository.NewDefaultPartnerOrderRepository(db)
	revenueShareRepo := repository.NewDefaultRevenueShareRepository(db)
	gatewayRepo := repository.NewDefaultGatewayRepository(db)
	profitRepo := repository.NewDefaultProfitRepository(db)
	shipmentRepo := repository.NewDefaultShipmentRepository(db)

	// Carrier tracking client
	tracker := tracking.NewAfterShipClient(cfg.Tracking.AfterShipAPIKey)

	// Usecases
	authUsecase := usecase.NewDefaultWebhookAuthUsecase(siteRepo, nonceRepo, cipher, appLog)
	siteUsecase := usecase.NewDefaultSiteUsecase(siteRepo, cipher, appLog)
	allocationUsecase := usecase.NewDefaultAllocationUsecase(
		partnerRepo, partnerOrderRepo, revenueShareRepo, gatewayRepo, hubMetrics, appLog)
	orderUsecase := usecase.NewDefaultOrderUsecase(
		orderRepo, shippingUpdateRepo, shipmentRepo, allocationUsecase, eventPublisher, hubMetrics, appLog)
	profitUsecase := usecase.NewDefaultProfitUsecase(profitRepo, orderRepo, appLog)
	shipmentUsecase := usecase.NewDefaultShipmentUsecase(
		shipmentRepo, orderRepo, tracker, eventPublisher, hubMetrics, appLog, cfg.Tracking.RequestsPerMinute)
	partnerUsecase := usecase.NewDefaultPartnerUsecase(partnerRepo, partnerOrderRepo, siteRepo)
	gatewayUsecase := usecase.NewDefaultGatewayUsecase(gatewayRepo, siteRepo)
	reportUsecase := usecase.NewDefaultReportUsecase(
		orderRepo, gatewayRepo, partnerOrderRepo, siteRepo, partnerRepo, allocationUsecase, appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background sweeps stop when the signal context is cancelled
	tasks := background.NewBackgroundTasks(authUsecase, shipmentUsecase, appLog)
	tasks.StartAll(ctx)

	server := httpserver.NewServer(authUsecase, hubMetrics, httpserver.Handlers{
		Webhook:  handlers.NewWebhookHandler(orderUsecase, hubMetrics),
		Site:     handlers.NewSiteHandler(siteUsecase),
		Order:    handlers.NewOrderHandler(orderUsecase),
		Partner:  handlers.NewPartnerHandler(partnerUsecase),
		Gateway:  handlers.NewGatewayHandler(gatewayUsecase),
		Profit:   handlers.NewProfitHandler(profitUsecase),
		Shipment: handlers.NewShipmentHandler(shipmentUsecase),
		Report:   handlers.NewReportHandler(reportUsecase),
	}, appLog)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("http server shutdown: %v", err)
	}
}
