package orderdto

import "github.com/shopspring/decimal"

// SyncOrderInput is the normalized order payload from a store webhook.
// Money fields are decimal so string and numeric JSON inputs are both
// accepted upstream without float loss.
type SyncOrderInput struct {
	SiteID        string
	WcOrderID     string
	Status        string
	Currency      string
	OrderTotal    decimal.Decimal
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	ShippingTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	GatewayCode   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	// Raw JSON address objects, stored verbatim.
	ShippingAddress string
	BillingAddress  string
	PlacedAt        string
	Items           []SyncOrderItem
}

type SyncOrderItem struct {
	ProductID string
	Sku       string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
}

type ShippingUpdateInput struct {
	SiteID         string
	WcOrderID      string
	Status         string
	Provider       string
	TrackingNumber string
	// Payload keeps the original body for audit.
	Payload    string
	OccurredAt string
}
