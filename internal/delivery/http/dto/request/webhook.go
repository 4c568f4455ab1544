package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// WebhookEnvelope is the authentication wrapper common to every store
// webhook. Timestamp is json.Number so stores may send it as a string or a
// number.
type WebhookEnvelope struct {
	SiteAPIKey string      `json:"site_api_key"`
	Nonce      string      `json:"nonce"`
	Timestamp  json.Number `json:"timestamp"`
	Signature  string      `json:"signature"`
}

// OrderSyncRequest is the full order-sync webhook body. Money fields are
// decimal.Decimal, which accepts both string and numeric JSON; OrderTotalRaw
// is filled separately from the raw body because the signature base needs
// the exact textual form the store sent.
type OrderSyncRequest struct {
	WebhookEnvelope
	Order OrderPayload  `json:"order"`
	Items []ItemPayload `json:"items"`
}

type OrderPayload struct {
	WcOrderID       string          `json:"wc_order_id"`
	Status          string          `json:"status"`
	Currency        string          `json:"currency"`
	OrderTotal      decimal.Decimal `json:"order_total"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountTotal   decimal.Decimal `json:"discount_total"`
	ShippingTotal   decimal.Decimal `json:"shipping_total"`
	TaxTotal        decimal.Decimal `json:"tax_total"`
	PaymentGateway  string          `json:"payment_gateway"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	BillingAddress  json.RawMessage `json:"billing_address"`
	PlacedAt        string          `json:"placed_at"`
}

type ItemPayload struct {
	ProductID string          `json:"product_id"`
	Sku       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
}

type ShippingUpdateRequest struct {
	WebhookEnvelope
	WcOrderID      string `json:"wc_order_id"`
	Status         string `json:"status"`
	Provider       string `json:"provider"`
	TrackingNumber string `json:"tracking_number"`
	Payload        string `json:"payload"`
	OccurredAt     string `json:"occurred_at"`
}
