package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderProfitModel struct {
	ID                    string `gorm:"primaryKey;type:uuid"`
	OrderID               string `gorm:"type:uuid;uniqueIndex;not null"`
	SiteID                string `gorm:"type:uuid;index"`
	WcOrderID             string
	OrderTotal            decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProductCost           decimal.Decimal `gorm:"type:numeric(12,2)"`
	GatewayCostPercentage decimal.Decimal `gorm:"type:numeric(5,2)"`
	GatewayCost           decimal.Decimal `gorm:"type:numeric(12,2)"`
	OperationalCost       decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalCosts            decimal.Decimal `gorm:"type:numeric(12,2)"`
	NetProfit             decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProfitMargin          decimal.Decimal `gorm:"type:numeric(7,2)"`
	PayoutStatus          string          `gorm:"index"`
	PayoutDate            *time.Time
	Notes                 string
	IsCalculated          bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (OrderProfitModel) TableName() string { return "order_profits" }

type ShipmentModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	OrderID           string `gorm:"type:uuid;uniqueIndex;not null"`
	TrackingNumber    string `gorm:"index"`
	Carrier           string
	Status            string `gorm:"index"`
	TrackingURL       string
	ShippedAt         *time.Time
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ShipmentModel) TableName() string { return "shipments" }
