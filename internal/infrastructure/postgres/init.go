package postgres

import (
	"log"
	"time"

	"github.com/orderhub/order-hub-service/internal/config"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	connectBackoff    = 3 * time.Second
	connectBackoffMax = time.Minute
)

// MustInitDB opens the hub database and migrates the schema. The connect
// loop retries until the database answers: transient unavailability at boot
// must not crash-loop the process. TranslateError is required: nonce replay
// detection depends on gorm.ErrDuplicatedKey.
func MustInitDB(cfg *config.HubConfig) *gorm.DB {
	dsn := cfg.HubDB.Dsn

	var db *gorm.DB
	var err error
	backoff := connectBackoff
	for attempt := 1; ; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		log.Printf("db connect attempt %d failed, retrying in %s: %v", attempt, backoff, err)
		time.Sleep(backoff)
		if backoff < connectBackoffMax {
			backoff *= 2
			if backoff > connectBackoffMax {
				backoff = connectBackoffMax
			}
		}
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("failed to migrate schema: %v\n", err.Error())
	}

	return db
}
