package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PartnerModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"not null"`
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PartnerModel) TableName() string { return "partners" }

type SitePartnerModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	SiteID          string `gorm:"type:uuid;uniqueIndex:idx_site_partner;not null"`
	PartnerID       string `gorm:"type:uuid;uniqueIndex:idx_site_partner;not null"`
	ShareType       string `gorm:"not null"`
	SharePercentage decimal.Decimal `gorm:"type:numeric(5,2)"`
	IsActive        bool   `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SitePartnerModel) TableName() string { return "site_partners" }

type PartnerOrderModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	PartnerID       string `gorm:"type:uuid;uniqueIndex:idx_partner_order;not null"`
	OrderID         string `gorm:"type:uuid;uniqueIndex:idx_partner_order;not null"`
	OrderTotal      decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShareAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShareType       string
	SharePercentage decimal.Decimal `gorm:"type:numeric(5,2)"`
	IsPaid          bool            `gorm:"index"`
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PartnerOrderModel) TableName() string { return "partner_orders" }

type RevenueShareModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	OrderID            string `gorm:"type:uuid;index;not null"`
	PartnerID          string `gorm:"type:uuid"`
	PartnerShareAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	WebsiteShareAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	GatewayFeeAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	ComputedAt         time.Time
}

func (RevenueShareModel) TableName() string { return "revenue_shares" }
