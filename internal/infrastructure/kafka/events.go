package kafka

import "time"

const (
	TopicOrderSynced     = "orderhub.order.synced"
	TopicShipmentUpdated = "orderhub.shipment.updated"
)

// OrderSyncedEvent is emitted after every successful webhook sync so
// downstream consumers (reporting, notifications) see the post-conversion
// order state.
type OrderSyncedEvent struct {
	OrderID    string    `json:"order_id"`
	SiteID     string    `json:"site_id"`
	WcOrderID  string    `json:"wc_order_id"`
	Status     string    `json:"status"`
	OrderTotal string    `json:"order_total"`
	Currency   string    `json:"currency"`
	Gateway    string    `json:"gateway"`
	SyncedAt   time.Time `json:"synced_at"`
}

type ShipmentUpdatedEvent struct {
	ShipmentID     string    `json:"shipment_id"`
	OrderID        string    `json:"order_id"`
	TrackingNumber string    `json:"tracking_number"`
	Carrier        string    `json:"carrier"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updated_at"`
}
