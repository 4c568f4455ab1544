package orderdto

// SyncOrderOutput reports the durable order id plus a non-fatal allocation
// warning when profit bookkeeping failed after the order was persisted.
type SyncOrderOutput struct {
	OrderID           string
	AllocationWarning string
}

type ShippingUpdateOutput struct {
	ShippingUpdateID string
	OrderStatusSet   bool
}
