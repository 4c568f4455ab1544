package usecase

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	// sqlite cannot take concurrent writers; a single connection keeps
	// parallel test goroutines serialized instead of erroring.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.SiteModel{},
		&models.RequestNonceModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.ShippingUpdateModel{},
		&models.PartnerModel{},
		&models.SitePartnerModel{},
		&models.PartnerOrderModel{},
		&models.RevenueShareModel{},
		&models.PaymentGatewayDetailsModel{},
		&models.GatewayPartnerModel{},
		&models.GatewayPartnerAssignmentModel{},
		&models.SiteGatewayModel{},
		&models.OrderProfitModel{},
		&models.ShipmentModel{},
	)
	if err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var testMetrics = metrics.NewHubMetrics()
