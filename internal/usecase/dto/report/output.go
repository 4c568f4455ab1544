package reportdto

import "github.com/shopspring/decimal"

// GatewayRevenueReport covers a date range: one detail row per included
// order plus per-gateway and per-partner rollups.
type GatewayRevenueReport struct {
	OrderRows        []OrderRevenueRow
	GatewaySummaries []GatewaySummary
	PartnerSummaries []GatewayPartnerSummary
	OrdersIncluded   int
	OrdersSkipped    int
}

type OrderRevenueRow struct {
	OrderID      string
	WcOrderID    string
	SiteID       string
	GatewayCode  string
	OrderTotal   decimal.Decimal
	GatewayFee   decimal.Decimal
	NetRevenue   decimal.Decimal
	GatewayFound bool
}

type GatewaySummary struct {
	GatewayCode    string
	Orders         int
	GrossRevenue   decimal.Decimal
	TotalFees      decimal.Decimal
	NetRevenue     decimal.Decimal
	PartnerRevenue decimal.Decimal
}

type GatewayPartnerSummary struct {
	GatewayPartnerID string
	PartnerName      string
	Revenue          decimal.Decimal
	Orders           int
}

type DashboardTotals struct {
	TotalOrders        int64
	TotalRevenue       decimal.Decimal
	PartnerPayoutsOwed decimal.Decimal
	ActiveSites        int
}
