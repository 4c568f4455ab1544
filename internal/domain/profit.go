package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutProcessing PayoutStatus = "processing"
	PayoutPaid       PayoutStatus = "paid"
	PayoutRefunded   PayoutStatus = "refunded"
)

// OrderProfit is the per-order profit ledger. Cost components are stored so
// a payout-status change recomputes deterministically without re-reading
// the order.
type OrderProfit struct {
	ID                    string
	OrderID               string
	SiteID                string
	WcOrderID             string
	OrderTotal            decimal.Decimal
	ProductCost           decimal.Decimal
	GatewayCostPercentage decimal.Decimal
	GatewayCost           decimal.Decimal
	OperationalCost       decimal.Decimal
	TotalCosts            decimal.Decimal
	NetProfit             decimal.Decimal
	ProfitMargin          decimal.Decimal
	PayoutStatus          PayoutStatus
	PayoutDate            *time.Time
	Notes                 string
	IsCalculated          bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type ProfitStats struct {
	TotalOrders         int64
	TotalRevenue        decimal.Decimal
	TotalCosts          decimal.Decimal
	TotalProfit         decimal.Decimal
	AverageProfitMargin decimal.Decimal
}

type SiteProfitStats struct {
	SiteID string
	ProfitStats
}

type ProfitRepository interface {
	// UpsertOrderProfit keys on order_id: one profit row per order.
	UpsertOrderProfit(ctx context.Context, profit *OrderProfit) error
	GetProfitByOrderID(ctx context.Context, orderID string) (*OrderProfit, error)
	ListProfits(ctx context.Context, siteID string) ([]*OrderProfit, error)
	GetProfitStats(ctx context.Context, siteID string) (*ProfitStats, []*SiteProfitStats, error)
}
