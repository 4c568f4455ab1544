package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentGatewayDetailsModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	GatewayCode    string `gorm:"uniqueIndex;not null"`
	Descriptor     string
	FeeType        string           `gorm:"not null"`
	FeesPercentage *decimal.Decimal `gorm:"type:numeric(5,2)"`
	FeesFixed      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PaymentGatewayDetailsModel) TableName() string { return "payment_gateway_details" }

type GatewayPartnerModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	PartnerName string `gorm:"not null"`
	PartnerCode string `gorm:"uniqueIndex;not null"`
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (GatewayPartnerModel) TableName() string { return "gateway_partners" }

type GatewayPartnerAssignmentModel struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	GatewayPartnerID     string `gorm:"type:uuid;uniqueIndex:idx_gw_partner_gateway;not null"`
	PaymentGatewayID     string `gorm:"type:uuid;uniqueIndex:idx_gw_partner_gateway;not null"`
	AssignmentPercentage decimal.Decimal `gorm:"type:numeric(5,2)"`
	IsActive             bool            `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (GatewayPartnerAssignmentModel) TableName() string { return "gateway_partner_assignments" }

type SiteGatewayModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	SiteID              string `gorm:"type:uuid;uniqueIndex:idx_site_gateway;not null"`
	GatewayCode         string `gorm:"uniqueIndex:idx_site_gateway;not null"`
	WebsiteSharePercent decimal.Decimal `gorm:"type:numeric(5,2)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (SiteGatewayModel) TableName() string { return "site_gateways" }
