package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/kafka"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	shipmentdto "github.com/orderhub/order-hub-service/internal/usecase/dto/shipment"
	"github.com/sirupsen/logrus"
)

type ShipmentUsecase interface {
	CreateShipment(ctx context.Context, shipment *domain.Shipment) (*domain.Shipment, error)
	GetShipmentByOrderID(ctx context.Context, orderID string) (*domain.Shipment, error)
	ListShipments(ctx context.Context, status string) ([]*domain.Shipment, error)
	RefreshShipment(ctx context.Context, shipmentID string) (*shipmentdto.RefreshResult, error)
	RefreshAllShipments(ctx context.Context) (*shipmentdto.BulkRefreshResult, error)
	DeleteShipment(ctx context.Context, shipmentID string) error
}

type DefaultShipmentUsecase struct {
	ShipmentRepo domain.ShipmentRepository
	OrderRepo    domain.OrderRepository
	Tracker      domain.TrackingService
	Publisher    kafka.EventPublisher
	Metrics      *metrics.HubMetrics
	Log          *logrus.Logger

	// Inter-call delay for bulk refresh, derived from the carrier API's
	// per-minute quota.
	RefreshInterval time.Duration
}

func NewDefaultShipmentUsecase(
	shipmentRepo domain.ShipmentRepository,
	orderRepo domain.OrderRepository,
	tracker domain.TrackingService,
	eventPublisher kafka.EventPublisher,
	hubMetrics *metrics.HubMetrics,
	log *logrus.Logger,
	requestsPerMinute int) *DefaultShipmentUsecase {

	if requestsPerMinute <= 0 {
		requestsPerMinute = 100
	}
	return &DefaultShipmentUsecase{
		ShipmentRepo:    shipmentRepo,
		OrderRepo:       orderRepo,
		Tracker:         tracker,
		Publisher:       eventPublisher,
		Metrics:         hubMetrics,
		Log:             log,
		RefreshInterval: time.Minute / time.Duration(requestsPerMinute),
	}
}

func (uc *DefaultShipmentUsecase) CreateShipment(ctx context.Context, shipment *domain.Shipment) (*domain.Shipment, error) {
	if _, err := uc.OrderRepo.GetOrderByID(ctx, shipment.OrderID); err != nil {
		return nil, err
	}
	if shipment.ID == "" {
		shipment.ID = uuid.NewString()
	}
	if shipment.Status == "" {
		shipment.Status = string(domain.ShipmentPending)
	}
	shipment.CreatedAt = time.Now().UTC()
	shipment.UpdatedAt = shipment.CreatedAt
	if err := uc.ShipmentRepo.CreateShipment(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (uc *DefaultShipmentUsecase) GetShipmentByOrderID(ctx context.Context, orderID string) (*domain.Shipment, error) {
	return uc.ShipmentRepo.GetShipmentByOrderID(ctx, orderID)
}

func (uc *DefaultShipmentUsecase) ListShipments(ctx context.Context, status string) ([]*domain.Shipment, error) {
	return uc.ShipmentRepo.ListShipments(ctx, status)
}

// RefreshShipment pulls live tracking and persists only when the carrier
// reports a different status than the stored one.
func (uc *DefaultShipmentUsecase) RefreshShipment(ctx context.Context, shipmentID string) (*shipmentdto.RefreshResult, error) {
	shipment, err := uc.ShipmentRepo.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return uc.refresh(ctx, shipment)
}

func (uc *DefaultShipmentUsecase) refresh(ctx context.Context, shipment *domain.Shipment) (*shipmentdto.RefreshResult, error) {
	start := time.Now()
	tracking, err := uc.Tracker.GetLiveTracking(ctx, shipment.TrackingNumber, shipment.Carrier)
	uc.Metrics.TrackingLookupSeconds.WithLabelValues(shipment.Carrier).Observe(time.Since(start).Seconds())
	if err != nil {
		uc.Metrics.ShipmentRefreshTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	result := &shipmentdto.RefreshResult{
		ShipmentID: shipment.ID,
		Status:     tracking.Status,
	}
	if tracking.Status == shipment.Status {
		uc.Metrics.ShipmentRefreshTotal.WithLabelValues("unchanged").Inc()
		return result, nil
	}

	shipment.Status = tracking.Status
	shipment.EstimatedDelivery = tracking.EstimatedDelivery
	if tracking.IsDelivered {
		shipment.DeliveredAt = tracking.DeliveredAt
	}
	if tracking.HasException {
		shipment.Notes = tracking.ExceptionMessage
	}
	shipment.UpdatedAt = time.Now().UTC()
	if err := uc.ShipmentRepo.UpdateShipment(ctx, shipment); err != nil {
		uc.Metrics.ShipmentRefreshTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	result.Changed = true
	uc.Metrics.ShipmentRefreshTotal.WithLabelValues("updated").Inc()

	if err := uc.Publisher.PublishShipmentUpdated(ctx, kafka.ShipmentUpdatedEvent{
		ShipmentID:     shipment.ID,
		OrderID:        shipment.OrderID,
		TrackingNumber: shipment.TrackingNumber,
		Carrier:        shipment.Carrier,
		Status:         shipment.Status,
		UpdatedAt:      shipment.UpdatedAt,
	}); err != nil {
		uc.Log.WithError(err).Warn("shipment.updated event not published")
	}
	return result, nil
}

// RefreshAllShipments walks every trackable shipment with an inter-call
// delay sized to the carrier quota. Per-shipment failures are collected and
// the batch continues.
func (uc *DefaultShipmentUsecase) RefreshAllShipments(ctx context.Context) (*shipmentdto.BulkRefreshResult, error) {
	shipments, err := uc.ShipmentRepo.ListTrackableShipments(ctx)
	if err != nil {
		return nil, err
	}

	batch := &shipmentdto.BulkRefreshResult{Total: len(shipments)}
	for i, shipment := range shipments {
		if i > 0 {
			select {
			case <-ctx.Done():
				return batch, ctx.Err()
			case <-time.After(uc.RefreshInterval):
			}
		}

		result, err := uc.refresh(ctx, shipment)
		if err != nil {
			batch.Failed++
			batch.Results = append(batch.Results, shipmentdto.RefreshResult{
				ShipmentID: shipment.ID,
				Err:        err.Error(),
			})
			uc.Log.WithFields(logrus.Fields{
				"shipment_id":     shipment.ID,
				"tracking_number": shipment.TrackingNumber,
			}).WithError(err).Warn("tracking refresh failed")
			continue
		}
		if result.Changed {
			batch.Updated++
		} else {
			batch.Skipped++
		}
		batch.Results = append(batch.Results, *result)
	}
	return batch, nil
}

func (uc *DefaultShipmentUsecase) DeleteShipment(ctx context.Context, shipmentID string) error {
	return uc.ShipmentRepo.DeleteShipment(ctx, shipmentID)
}
