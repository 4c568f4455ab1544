package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	SiteID             string `gorm:"type:uuid;uniqueIndex:idx_site_wc_order;not null"`
	WcOrderID          string `gorm:"uniqueIndex:idx_site_wc_order;not null"`
	Status             string `gorm:"index"`
	Currency           string
	OrderTotal         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal           decimal.Decimal `gorm:"type:numeric(12,2)"`
	DiscountTotal      decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingTotal      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxTotal           decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentGatewayCode string          `gorm:"index"`
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	ShippingAddress    string `gorm:"type:jsonb"`
	BillingAddress     string `gorm:"type:jsonb"`
	PlacedAt           string
	SyncedAt           time.Time `gorm:"index"`
	Items              []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderModel) TableName() string { return "orders" }

type OrderItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;index;not null"`
	ProductID string
	Sku       string
	Name      string
	Quantity  int64
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (OrderItemModel) TableName() string { return "order_items" }

type ShippingUpdateModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	OrderID        string `gorm:"type:uuid;index;not null"`
	Status         string
	Provider       string
	TrackingNumber string
	Payload        string `gorm:"type:jsonb"`
	OccurredAt     time.Time
	CreatedAt      time.Time
}

func (ShippingUpdateModel) TableName() string { return "shipping_updates" }
