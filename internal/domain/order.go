package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 string
	SiteID             string
	WcOrderID          string
	Status             string
	Currency           string
	OrderTotal         decimal.Decimal
	Subtotal           decimal.Decimal
	DiscountTotal      decimal.Decimal
	ShippingTotal      decimal.Decimal
	TaxTotal           decimal.Decimal
	PaymentGatewayCode string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	// Raw JSON address objects as the store sent them.
	ShippingAddress string
	BillingAddress  string
	// PlacedAt arrives as free-form text from the source store.
	PlacedAt string
	SyncedAt time.Time
	Items    []OrderItem
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Sku       string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
}

type OrderFilters struct {
	SiteID          string
	Status          string
	Search          string
	ExcludeStatuses []string
	SyncedFrom      *time.Time
	SyncedTo        *time.Time
}

type OrderRepository interface {
	// UpsertOrder inserts or updates by (site_id, wc_order_id) and replaces
	// line items wholesale, all in one transaction. order.ID is set to the
	// durable id on return.
	UpsertOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrderBySiteAndWcOrderID(ctx context.Context, siteID, wcOrderID string) (*Order, error)
	ListOrders(ctx context.Context, filters OrderFilters, page, pageSize int) ([]*Order, int64, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
	UpdateOrderGateway(ctx context.Context, orderID, gatewayCode string) error
}

// ShippingUpdate is the raw event a store pushes when fulfilment state
// changes; it is kept verbatim alongside the derived Shipment row.
type ShippingUpdate struct {
	ID             string
	OrderID        string
	Status         string
	Provider       string
	TrackingNumber string
	Payload        string
	OccurredAt     time.Time
	CreatedAt      time.Time
}

type ShippingUpdateRepository interface {
	CreateShippingUpdate(ctx context.Context, update *ShippingUpdate) error
	ListShippingUpdatesByOrder(ctx context.Context, orderID string) ([]*ShippingUpdate, error)
}
