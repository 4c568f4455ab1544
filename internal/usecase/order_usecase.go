package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/kafka"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	orderdto "github.com/orderhub/order-hub-service/internal/usecase/dto/order"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// gbpToUsdRate is a fixed conversion constant, not a live rate. Stores
// reporting GBP are normalized so every downstream computation runs in USD.
var gbpToUsdRate = decimal.NewFromFloat(1.37)

// Shipping statuses that overwrite the order's own status verbatim.
// Anything else is recorded but does not touch the order.
var terminalShippingStatuses = map[string]struct{}{
	"delivered": {},
	"failed":    {},
	"cancelled": {},
}

// Statuses that mean the parcel is actually moving. Only these may create
// or update a shipment row off a shipping event.
var shippedLikeStatuses = map[string]struct{}{
	"shipped":          {},
	"in_transit":       {},
	"out_for_delivery": {},
	"delivered":        {},
}

type OrderUsecase interface {
	SyncOrder(ctx context.Context, input *orderdto.SyncOrderInput) (*orderdto.SyncOrderOutput, error)
	ProcessShippingUpdate(ctx context.Context, input *orderdto.ShippingUpdateInput) (*orderdto.ShippingUpdateOutput, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, filters domain.OrderFilters, page, pageSize int) ([]*domain.Order, int64, error)
}

type DefaultOrderUsecase struct {
	OrderRepo          domain.OrderRepository
	ShippingUpdateRepo domain.ShippingUpdateRepository
	ShipmentRepo       domain.ShipmentRepository
	Allocator          AllocationUsecase
	Publisher          kafka.EventPublisher
	Metrics            *metrics.HubMetrics
	Log                *logrus.Logger
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	shippingUpdateRepo domain.ShippingUpdateRepository,
	shipmentRepo domain.ShipmentRepository,
	allocator AllocationUsecase,
	eventPublisher kafka.EventPublisher,
	hubMetrics *metrics.HubMetrics,
	log *logrus.Logger) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:          orderRepo,
		ShippingUpdateRepo: shippingUpdateRepo,
		ShipmentRepo:       shipmentRepo,
		Allocator:          allocator,
		Publisher:          eventPublisher,
		Metrics:            hubMetrics,
		Log:                log,
	}
}

// SyncOrder persists an order payload idempotently and then runs revenue
// allocation. Allocation failure never fails the sync: order durability
// outranks same-request bookkeeping, so the error is surfaced as a warning.
func (uc *DefaultOrderUsecase) SyncOrder(ctx context.Context, input *orderdto.SyncOrderInput) (*orderdto.SyncOrderOutput, error) {
	order := toDomainOrderFromSync(input)
	normalizeCurrency(order)

	if err := uc.OrderRepo.UpsertOrder(ctx, order); err != nil {
		return nil, err
	}

	uc.Metrics.OrdersSyncedTotal.WithLabelValues(order.SiteID, order.Status).Inc()
	amount, _ := order.OrderTotal.Float64()
	uc.Metrics.OrdersSyncedAmount.WithLabelValues(order.SiteID).Add(amount)

	if err := uc.Publisher.PublishOrderSynced(ctx, kafka.OrderSyncedEvent{
		OrderID:    order.ID,
		SiteID:     order.SiteID,
		WcOrderID:  order.WcOrderID,
		Status:     order.Status,
		OrderTotal: order.OrderTotal.StringFixed(2),
		Currency:   order.Currency,
		Gateway:    order.PaymentGatewayCode,
		SyncedAt:   order.SyncedAt,
	}); err != nil {
		uc.Log.WithError(err).Warn("order.synced event not published")
	}

	output := &orderdto.SyncOrderOutput{OrderID: order.ID}

	if err := uc.Allocator.AllocateOrder(ctx, order); err != nil {
		uc.Metrics.AllocationRunsTotal.WithLabelValues("error").Inc()
		uc.Log.WithFields(logrus.Fields{
			"order_id":    order.ID,
			"wc_order_id": order.WcOrderID,
		}).WithError(err).Error("revenue allocation failed")
		output.AllocationWarning = err.Error()
	} else {
		uc.Metrics.AllocationRunsTotal.WithLabelValues("ok").Inc()
	}

	return output, nil
}

// ProcessShippingUpdate records the raw event, promotes terminal statuses
// onto the order, and upserts a shipment row when a tracking number shows
// up on a shipped-like status.
func (uc *DefaultOrderUsecase) ProcessShippingUpdate(ctx context.Context, input *orderdto.ShippingUpdateInput) (*orderdto.ShippingUpdateOutput, error) {
	order, err := uc.OrderRepo.GetOrderBySiteAndWcOrderID(ctx, input.SiteID, input.WcOrderID)
	if err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if ts, err := time.Parse(time.RFC3339, input.OccurredAt); err == nil {
		occurredAt = ts
	}

	update := &domain.ShippingUpdate{
		ID:             uuid.NewString(),
		OrderID:        order.ID,
		Status:         input.Status,
		Provider:       input.Provider,
		TrackingNumber: input.TrackingNumber,
		Payload:        input.Payload,
		OccurredAt:     occurredAt,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.ShippingUpdateRepo.CreateShippingUpdate(ctx, update); err != nil {
		return nil, err
	}

	output := &orderdto.ShippingUpdateOutput{ShippingUpdateID: update.ID}

	if _, terminal := terminalShippingStatuses[input.Status]; terminal {
		if err := uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, input.Status); err != nil {
			return nil, err
		}
		output.OrderStatusSet = true
	}

	if _, shipped := shippedLikeStatuses[input.Status]; shipped && input.TrackingNumber != "" {
		uc.upsertShipmentFromUpdate(ctx, order.ID, input)
	}

	return output, nil
}

func (uc *DefaultOrderUsecase) upsertShipmentFromUpdate(ctx context.Context, orderID string, input *orderdto.ShippingUpdateInput) {
	existing, err := uc.ShipmentRepo.GetShipmentByOrderID(ctx, orderID)
	if err == nil {
		if existing.TrackingNumber != input.TrackingNumber || existing.Status != input.Status {
			existing.TrackingNumber = input.TrackingNumber
			existing.Carrier = input.Provider
			existing.Status = input.Status
			if err := uc.ShipmentRepo.UpdateShipment(ctx, existing); err != nil {
				uc.Log.WithError(err).Warn("shipment not updated from shipping event")
			}
		}
		return
	}
	if err != domain.ErrShipmentNotFound {
		uc.Log.WithError(err).Warn("shipment lookup failed")
		return
	}

	now := time.Now().UTC()
	shipment := &domain.Shipment{
		ID:             uuid.NewString(),
		OrderID:        orderID,
		TrackingNumber: input.TrackingNumber,
		Carrier:        input.Provider,
		Status:         input.Status,
		ShippedAt:      &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.ShipmentRepo.CreateShipment(ctx, shipment); err != nil {
		uc.Log.WithError(err).Warn("shipment not created from shipping event")
	}
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, filters domain.OrderFilters, page, pageSize int) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return uc.OrderRepo.ListOrders(ctx, filters, page, pageSize)
}

// normalizeCurrency rewrites GBP orders to USD at the fixed rate. Every
// order-level money field converts and rounds to 2dp.
func normalizeCurrency(order *domain.Order) {
	if order.Currency != "GBP" {
		return
	}
	convert := func(d decimal.Decimal) decimal.Decimal {
		return d.Mul(gbpToUsdRate).Round(2)
	}
	order.OrderTotal = convert(order.OrderTotal)
	order.Subtotal = convert(order.Subtotal)
	order.DiscountTotal = convert(order.DiscountTotal)
	order.ShippingTotal = convert(order.ShippingTotal)
	order.TaxTotal = convert(order.TaxTotal)
	order.Currency = "USD"
}

func toDomainOrderFromSync(input *orderdto.SyncOrderInput) *domain.Order {
	items := make([]domain.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Sku:       item.Sku,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
			Total:     item.Total,
		}
	}
	return &domain.Order{
		ID:                 uuid.NewString(),
		SiteID:             input.SiteID,
		WcOrderID:          input.WcOrderID,
		Status:             input.Status,
		Currency:           input.Currency,
		OrderTotal:         input.OrderTotal,
		Subtotal:           input.Subtotal,
		DiscountTotal:      input.DiscountTotal,
		ShippingTotal:      input.ShippingTotal,
		TaxTotal:           input.TaxTotal,
		PaymentGatewayCode: input.GatewayCode,
		CustomerName:       input.CustomerName,
		CustomerEmail:      input.CustomerEmail,
		CustomerPhone:      input.CustomerPhone,
		ShippingAddress:    input.ShippingAddress,
		BillingAddress:     input.BillingAddress,
		PlacedAt:           input.PlacedAt,
		SyncedAt:           time.Now().UTC(),
		Items:              items,
	}
}
