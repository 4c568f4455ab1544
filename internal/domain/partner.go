package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ShareType string

const (
	ShareTypeRevenue ShareType = "Revenue"
	ShareTypeProfit  ShareType = "Profit"
)

type Partner struct {
	ID        string
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SitePartnerAssignment defines how much of an order's value (Revenue) or
// estimated profit (Profit) a partner is owed for orders on a given site.
type SitePartnerAssignment struct {
	ID              string
	SiteID          string
	PartnerID       string
	ShareType       ShareType
	SharePercentage decimal.Decimal
	IsActive        bool
}

// PartnerOrder is the earnings ledger: exactly one row per
// (partner, order), upserted on every re-sync.
type PartnerOrder struct {
	ID              string
	PartnerID       string
	OrderID         string
	OrderTotal      decimal.Decimal
	ShareAmount     decimal.Decimal
	ShareType       ShareType
	SharePercentage decimal.Decimal
	IsPaid          bool
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RevenueShare is the legacy 3-way split kept for older reports. Rows are
// replaced per order on re-sync.
type RevenueShare struct {
	ID                 string
	OrderID            string
	PartnerID          string
	PartnerShareAmount decimal.Decimal
	WebsiteShareAmount decimal.Decimal
	GatewayFeeAmount   decimal.Decimal
	ComputedAt         time.Time
}

type PartnerRepository interface {
	CreatePartner(ctx context.Context, partner *Partner) error
	GetPartnerByID(ctx context.Context, partnerID string) (*Partner, error)
	ListPartners(ctx context.Context) ([]*Partner, error)
	ListActiveSitePartnerAssignments(ctx context.Context, siteID string) ([]*SitePartnerAssignment, error)
	CreateSitePartnerAssignment(ctx context.Context, assignment *SitePartnerAssignment) error
}

type PartnerOrderRepository interface {
	// UpsertPartnerOrder updates in place when a (partner, order) row
	// exists, inserts otherwise.
	UpsertPartnerOrder(ctx context.Context, po *PartnerOrder) error
	ListPartnerOrdersByOrder(ctx context.Context, orderID string) ([]*PartnerOrder, error)
	ListPartnerOrdersByPartner(ctx context.Context, partnerID string) ([]*PartnerOrder, error)
	MarkPartnerOrderPaid(ctx context.Context, partnerOrderID string, paidAt time.Time) error
}

type RevenueShareRepository interface {
	// ReplaceRevenueShares deletes the order's rows and inserts the new set.
	ReplaceRevenueShares(ctx context.Context, orderID string, shares []*RevenueShare) error
	ListRevenueSharesByOrder(ctx context.Context, orderID string) ([]*RevenueShare, error)
}
