package domain

import (
	"context"
	"time"
)

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentShipped   ShipmentStatus = "shipped"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentException ShipmentStatus = "exception"
)

// Shipment tracks fulfilment for one order; at most one row per order.
type Shipment struct {
	ID                string
	OrderID           string
	TrackingNumber    string
	Carrier           string
	Status            string
	TrackingURL       string
	ShippedAt         *time.Time
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment *Shipment) error
	GetShipmentByID(ctx context.Context, shipmentID string) (*Shipment, error)
	GetShipmentByOrderID(ctx context.Context, orderID string) (*Shipment, error)
	ListShipments(ctx context.Context, status string) ([]*Shipment, error)
	// ListTrackableShipments returns shipments carrying a tracking number.
	ListTrackableShipments(ctx context.Context) ([]*Shipment, error)
	UpdateShipment(ctx context.Context, shipment *Shipment) error
	DeleteShipment(ctx context.Context, shipmentID string) error
}

// TrackingResponse is the carrier-neutral shape every tracking adapter must
// produce.
type TrackingResponse struct {
	TrackingNumber    string
	Carrier           string
	Status            string
	CurrentLocation   string
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	Events            []TrackingEvent
	IsDelivered       bool
	HasException      bool
	ExceptionMessage  string
	LastUpdated       time.Time
}

type TrackingEvent struct {
	Timestamp   time.Time
	Location    string
	Status      string
	Description string
}

type TrackingService interface {
	GetLiveTracking(ctx context.Context, trackingNumber, carrier string) (*TrackingResponse, error)
}
