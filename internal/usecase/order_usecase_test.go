package usecase

import (
	"context"
	"testing"

	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/kafka"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/repository"
	orderdto "github.com/orderhub/order-hub-service/internal/usecase/dto/order"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderUsecase(db *gorm.DB) *DefaultOrderUsecase {
	allocator := NewDefaultAllocationUsecase(
		repository.NewDefaultPartnerRepository(db),
		repository.NewDefaultPartnerOrderRepository(db),
		repository.NewDefaultRevenueShareRepository(db),
		repository.NewDefaultGatewayRepository(db),
		testMetrics,
		testLogger(),
	)
	return NewDefaultOrderUsecase(
		repository.NewDefaultOrderRepository(db),
		repository.NewDefaultShippingUpdateRepository(db),
		repository.NewDefaultShipmentRepository(db),
		allocator,
		kafka.NopPublisher{},
		testMetrics,
		testLogger(),
	)
}

func syncInput(siteID, wcOrderID string) *orderdto.SyncOrderInput {
	return &orderdto.SyncOrderInput{
		SiteID:        siteID,
		WcOrderID:     wcOrderID,
		Status:        "processing",
		Currency:      "USD",
		OrderTotal:    decimal.RequireFromString("100.00"),
		Subtotal:      decimal.RequireFromString("90.00"),
		ShippingTotal: decimal.RequireFromString("10.00"),
		GatewayCode:   "stripe",
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		PlacedAt:      "2026-04-01 09:30:00",
		Items: []orderdto.SyncOrderItem{
			{ProductID: "p1", Sku: "SKU-1", Name: "Widget", Quantity: 2,
				Price:    decimal.RequireFromString("45.00"),
				Subtotal: decimal.RequireFromString("90.00"),
				Total:    decimal.RequireFromString("90.00")},
		},
	}
}

func TestSyncOrderIdempotent(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)
	ctx := context.Background()

	first, err := uc.SyncOrder(ctx, syncInput("site-1", "1042"))
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}

	updated := syncInput("site-1", "1042")
	updated.Status = "completed"
	updated.Items = append(updated.Items, orderdto.SyncOrderItem{
		ProductID: "p2", Sku: "SKU-2", Name: "Gadget", Quantity: 1,
		Price:    decimal.RequireFromString("10.00"),
		Subtotal: decimal.RequireFromString("10.00"),
		Total:    decimal.RequireFromString("10.00"),
	})
	second, err := uc.SyncOrder(ctx, updated)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}

	if first.OrderID != second.OrderID {
		t.Errorf("order ids differ across syncs: %s vs %s", first.OrderID, second.OrderID)
	}

	orders, total, err := uc.ListOrders(ctx, domain.OrderFilters{SiteID: "site-1"}, 1, 10)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("order count = %d, want 1", total)
	}
	if orders[0].Status != "completed" {
		t.Errorf("status = %s, want completed", orders[0].Status)
	}
	if len(orders[0].Items) != 2 {
		t.Errorf("item count = %d, want 2 (wholesale replacement)", len(orders[0].Items))
	}
}

func TestSyncOrderSameWcOrderIDDifferentSites(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)
	ctx := context.Background()

	a, err := uc.SyncOrder(ctx, syncInput("site-a", "1042"))
	if err != nil {
		t.Fatalf("site-a sync: %v", err)
	}
	b, err := uc.SyncOrder(ctx, syncInput("site-b", "1042"))
	if err != nil {
		t.Fatalf("site-b sync: %v", err)
	}
	if a.OrderID == b.OrderID {
		t.Error("orders from different sites collided on wc_order_id")
	}
}

func TestSyncOrderConvertsGBP(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)
	ctx := context.Background()

	input := syncInput("site-1", "2001")
	input.Currency = "GBP"
	input.OrderTotal = decimal.RequireFromString("50.00")
	input.Subtotal = decimal.RequireFromString("40.00")
	input.DiscountTotal = decimal.RequireFromString("5.00")
	input.ShippingTotal = decimal.RequireFromString("10.00")
	input.TaxTotal = decimal.RequireFromString("5.00")

	out, err := uc.SyncOrder(ctx, input)
	if err != nil {
		t.Fatalf("SyncOrder: %v", err)
	}

	order, err := uc.GetOrderByID(ctx, out.OrderID)
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if order.Currency != "USD" {
		t.Errorf("currency = %s, want USD", order.Currency)
	}
	checks := map[string][2]decimal.Decimal{
		"order_total":    {order.OrderTotal, decimal.RequireFromString("68.50")},
		"subtotal":       {order.Subtotal, decimal.RequireFromString("54.80")},
		"discount_total": {order.DiscountTotal, decimal.RequireFromString("6.85")},
		"shipping_total": {order.ShippingTotal, decimal.RequireFromString("13.70")},
		"tax_total":      {order.TaxTotal, decimal.RequireFromString("6.85")},
	}
	for field, pair := range checks {
		if !pair[0].Equal(pair[1]) {
			t.Errorf("%s = %s, want %s", field, pair[0], pair[1])
		}
	}
}

func TestSyncOrderNonGBPNotConverted(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)

	input := syncInput("site-1", "2002")
	input.Currency = "EUR"
	out, err := uc.SyncOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("SyncOrder: %v", err)
	}
	order, _ := uc.GetOrderByID(context.Background(), out.OrderID)
	if order.Currency != "EUR" {
		t.Errorf("currency = %s, want EUR", order.Currency)
	}
	if !order.OrderTotal.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("order_total = %s, want 100.00", order.OrderTotal)
	}
}

func TestProcessShippingUpdate(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)
	ctx := context.Background()

	synced, err := uc.SyncOrder(ctx, syncInput("site-1", "3001"))
	if err != nil {
		t.Fatalf("SyncOrder: %v", err)
	}

	t.Run("non-terminal status recorded without touching order", func(t *testing.T) {
		out, err := uc.ProcessShippingUpdate(ctx, &orderdto.ShippingUpdateInput{
			SiteID:    "site-1",
			WcOrderID: "3001",
			Status:    "in_transit",
			Provider:  "royal-mail",
		})
		if err != nil {
			t.Fatalf("ProcessShippingUpdate: %v", err)
		}
		if out.OrderStatusSet {
			t.Error("non-terminal status set the order status")
		}
		order, _ := uc.GetOrderByID(ctx, synced.OrderID)
		if order.Status != "processing" {
			t.Errorf("order status = %s, want processing", order.Status)
		}
	})

	t.Run("tracking number alone does not create a shipment", func(t *testing.T) {
		other, err := uc.SyncOrder(ctx, syncInput("site-1", "3002"))
		if err != nil {
			t.Fatalf("SyncOrder: %v", err)
		}
		_, err = uc.ProcessShippingUpdate(ctx, &orderdto.ShippingUpdateInput{
			SiteID:         "site-1",
			WcOrderID:      "3002",
			Status:         "label_created",
			Provider:       "royal-mail",
			TrackingNumber: "RM000000001GB",
		})
		if err != nil {
			t.Fatalf("ProcessShippingUpdate: %v", err)
		}
		if _, err := uc.ShipmentRepo.GetShipmentByOrderID(ctx, other.OrderID); err != domain.ErrShipmentNotFound {
			t.Errorf("err = %v, want ErrShipmentNotFound", err)
		}
	})

	t.Run("shipped status with tracking number creates shipment", func(t *testing.T) {
		_, err := uc.ProcessShippingUpdate(ctx, &orderdto.ShippingUpdateInput{
			SiteID:         "site-1",
			WcOrderID:      "3001",
			Status:         "shipped",
			Provider:       "royal-mail",
			TrackingNumber: "RM123456789GB",
		})
		if err != nil {
			t.Fatalf("ProcessShippingUpdate: %v", err)
		}
		shipment, err := uc.ShipmentRepo.GetShipmentByOrderID(ctx, synced.OrderID)
		if err != nil {
			t.Fatalf("GetShipmentByOrderID: %v", err)
		}
		if shipment.TrackingNumber != "RM123456789GB" {
			t.Errorf("tracking number = %s", shipment.TrackingNumber)
		}
	})

	t.Run("terminal status overwrites order status", func(t *testing.T) {
		out, err := uc.ProcessShippingUpdate(ctx, &orderdto.ShippingUpdateInput{
			SiteID:    "site-1",
			WcOrderID: "3001",
			Status:    "delivered",
			Provider:  "royal-mail",
		})
		if err != nil {
			t.Fatalf("ProcessShippingUpdate: %v", err)
		}
		if !out.OrderStatusSet {
			t.Error("terminal status did not set the order status")
		}
		order, _ := uc.GetOrderByID(ctx, synced.OrderID)
		if order.Status != "delivered" {
			t.Errorf("order status = %s, want delivered", order.Status)
		}
	})

	t.Run("unknown order rejected", func(t *testing.T) {
		_, err := uc.ProcessShippingUpdate(ctx, &orderdto.ShippingUpdateInput{
			SiteID:    "site-1",
			WcOrderID: "nope",
			Status:    "delivered",
		})
		if err != domain.ErrOrderNotFound {
			t.Errorf("err = %v, want ErrOrderNotFound", err)
		}
	})
}
