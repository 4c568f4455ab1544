package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type FeeType string

const (
	FeeTypePercentage FeeType = "percentage"
	FeeTypeFixed      FeeType = "fixed"
)

// PaymentGatewayDetails carries the fee schedule for one gateway. Exactly
// one of FeesPercentage/FeesFixed is populated depending on FeeType.
type PaymentGatewayDetails struct {
	ID             string
	GatewayCode    string
	Descriptor     string
	FeeType        FeeType
	FeesPercentage *decimal.Decimal
	FeesFixed      *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GatewayPartner is entitled to a share of a gateway's net revenue,
// independent of which site an order came from.
type GatewayPartner struct {
	ID          string
	PartnerName string
	PartnerCode string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GatewayPartnerAssignment struct {
	ID                   string
	GatewayPartnerID     string
	PaymentGatewayID     string
	AssignmentPercentage decimal.Decimal
	IsActive             bool
}

// SiteGateway holds the per-site website share used by the legacy revenue
// split.
type SiteGateway struct {
	ID                  string
	SiteID              string
	GatewayCode         string
	WebsiteSharePercent decimal.Decimal
}

type GatewayRepository interface {
	CreateGatewayDetails(ctx context.Context, details *PaymentGatewayDetails) error
	GetGatewayDetailsByCode(ctx context.Context, gatewayCode string) (*PaymentGatewayDetails, error)
	ListGatewayDetails(ctx context.Context) ([]*PaymentGatewayDetails, error)
	CreateGatewayPartner(ctx context.Context, partner *GatewayPartner) error
	GetGatewayPartnerByID(ctx context.Context, partnerID string) (*GatewayPartner, error)
	ListGatewayPartners(ctx context.Context) ([]*GatewayPartner, error)
	CreateGatewayPartnerAssignment(ctx context.Context, assignment *GatewayPartnerAssignment) error
	// ListActiveAssignments returns every active gateway-partner assignment;
	// callers filter by gateway id.
	ListActiveAssignments(ctx context.Context) ([]*GatewayPartnerAssignment, error)
	GetSiteGateway(ctx context.Context, siteID, gatewayCode string) (*SiteGateway, error)
	CreateSiteGateway(ctx context.Context, sg *SiteGateway) error
}
