package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestComputePayout(t *testing.T) {
	total := decimal.RequireFromString("100.00")
	product := decimal.RequireFromString("30.00")
	gwPct := decimal.RequireFromString("2.9")

	t.Run("paid", func(t *testing.T) {
		comp := ComputePayout(total, product, gwPct, domain.PayoutPaid)
		if !comp.GatewayCost.Equal(decimal.RequireFromString("2.90")) {
			t.Errorf("gateway cost = %s, want 2.90", comp.GatewayCost)
		}
		if !comp.TotalCosts.Equal(decimal.RequireFromString("37.90")) {
			t.Errorf("total costs = %s, want 37.90", comp.TotalCosts)
		}
		if !comp.NetProfit.Equal(decimal.RequireFromString("62.10")) {
			t.Errorf("net profit = %s, want 62.10", comp.NetProfit)
		}
		if !comp.ProfitMargin.Equal(decimal.RequireFromString("62.10")) {
			t.Errorf("margin = %s, want 62.10", comp.ProfitMargin)
		}
	})

	t.Run("processing reports only sunk exposure", func(t *testing.T) {
		comp := ComputePayout(total, product, gwPct, domain.PayoutProcessing)
		if !comp.NetProfit.Equal(decimal.RequireFromString("-32.90")) {
			t.Errorf("net profit = %s, want -32.90", comp.NetProfit)
		}
		if !comp.ProfitMargin.IsZero() {
			t.Errorf("margin = %s, want 0", comp.ProfitMargin)
		}
	})

	t.Run("unrecognized status behaves like processing", func(t *testing.T) {
		comp := ComputePayout(total, product, gwPct, domain.PayoutStatus("on-hold"))
		if !comp.NetProfit.Equal(decimal.RequireFromString("-32.90")) {
			t.Errorf("net profit = %s, want -32.90", comp.NetProfit)
		}
	})

	t.Run("refunded writes off total plus sunk costs", func(t *testing.T) {
		comp := ComputePayout(total, product, gwPct, domain.PayoutRefunded)
		if !comp.NetProfit.Equal(decimal.RequireFromString("-132.90")) {
			t.Errorf("net profit = %s, want -132.90", comp.NetProfit)
		}
		if !comp.ProfitMargin.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("margin = %s, want -100", comp.ProfitMargin)
		}
	})

	t.Run("paid with zero total has zero margin", func(t *testing.T) {
		comp := ComputePayout(decimal.Zero, decimal.Zero, gwPct, domain.PayoutPaid)
		if !comp.ProfitMargin.IsZero() {
			t.Errorf("margin = %s, want 0", comp.ProfitMargin)
		}
		if !comp.NetProfit.Equal(decimal.RequireFromString("-5.00")) {
			t.Errorf("net profit = %s, want -5.00", comp.NetProfit)
		}
	})
}

func newProfitUsecase(db *gorm.DB) *DefaultProfitUsecase {
	return NewDefaultProfitUsecase(
		repository.NewDefaultProfitRepository(db),
		repository.NewDefaultOrderRepository(db),
		testLogger(),
	)
}

func seedOrder(t *testing.T, db *gorm.DB, total string) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ID:         uuid.NewString(),
		SiteID:     "site-1",
		WcOrderID:  uuid.NewString()[:8],
		Status:     "processing",
		Currency:   "USD",
		OrderTotal: decimal.RequireFromString(total),
		SyncedAt:   time.Now(),
	}
	if err := repository.NewDefaultOrderRepository(db).UpsertOrder(context.Background(), order); err != nil {
		t.Fatalf("UpsertOrder: %v", err)
	}
	return order
}

func TestRecordOrderCosts(t *testing.T) {
	db := newTestDB(t)
	uc := newProfitUsecase(db)
	ctx := context.Background()
	order := seedOrder(t, db, "100.00")

	profit, err := uc.RecordOrderCosts(ctx, order.ID, decimal.RequireFromString("30.00"), decimal.RequireFromString("2.9"))
	if err != nil {
		t.Fatalf("RecordOrderCosts: %v", err)
	}
	if profit.PayoutStatus != domain.PayoutProcessing {
		t.Errorf("status = %s, want processing", profit.PayoutStatus)
	}
	if !profit.NetProfit.Equal(decimal.RequireFromString("-32.90")) {
		t.Errorf("net profit = %s, want -32.90", profit.NetProfit)
	}
	if !profit.IsCalculated {
		t.Error("profit not marked calculated")
	}

	// Re-recording costs updates the same row.
	profit, err = uc.RecordOrderCosts(ctx, order.ID, decimal.RequireFromString("40.00"), decimal.RequireFromString("2.9"))
	if err != nil {
		t.Fatalf("second RecordOrderCosts: %v", err)
	}
	if !profit.NetProfit.Equal(decimal.RequireFromString("-42.90")) {
		t.Errorf("net profit after update = %s, want -42.90", profit.NetProfit)
	}
	stored, err := uc.GetProfitByOrderID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetProfitByOrderID: %v", err)
	}
	if !stored.ProductCost.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("stored product cost = %s, want 40.00", stored.ProductCost)
	}
}

func TestRecordOrderCostsUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	uc := newProfitUsecase(db)

	_, err := uc.RecordOrderCosts(context.Background(), uuid.NewString(), decimal.Zero, decimal.Zero)
	if err != domain.ErrOrderNotFound {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestUpdatePayoutStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newProfitUsecase(db)
	ctx := context.Background()
	order := seedOrder(t, db, "100.00")

	if _, err := uc.RecordOrderCosts(ctx, order.ID, decimal.RequireFromString("30.00"), decimal.RequireFromString("2.9")); err != nil {
		t.Fatalf("RecordOrderCosts: %v", err)
	}

	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.Now = func() time.Time { return paidAt }

	profit, err := uc.UpdatePayoutStatus(ctx, order.ID, domain.PayoutPaid, "settled via wire")
	if err != nil {
		t.Fatalf("UpdatePayoutStatus paid: %v", err)
	}
	if !profit.NetProfit.Equal(decimal.RequireFromString("62.10")) {
		t.Errorf("paid net profit = %s, want 62.10", profit.NetProfit)
	}
	if profit.PayoutDate == nil || !profit.PayoutDate.Equal(paidAt) {
		t.Fatalf("payout date = %v, want %v", profit.PayoutDate, paidAt)
	}
	if profit.Notes != "settled via wire" {
		t.Errorf("notes = %q", profit.Notes)
	}

	// Refund after payout recomputes but keeps the original payout date.
	uc.Now = func() time.Time { return paidAt.Add(48 * time.Hour) }
	profit, err = uc.UpdatePayoutStatus(ctx, order.ID, domain.PayoutRefunded, "")
	if err != nil {
		t.Fatalf("UpdatePayoutStatus refunded: %v", err)
	}
	if !profit.NetProfit.Equal(decimal.RequireFromString("-132.90")) {
		t.Errorf("refunded net profit = %s, want -132.90", profit.NetProfit)
	}
	if !profit.ProfitMargin.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("refunded margin = %s, want -100", profit.ProfitMargin)
	}
	if profit.PayoutDate == nil || !profit.PayoutDate.Equal(paidAt) {
		t.Errorf("payout date changed on refund: %v", profit.PayoutDate)
	}
	if profit.Notes != "settled via wire" {
		t.Errorf("empty notes overwrote previous value: %q", profit.Notes)
	}

	// Re-entering paid does not move the payout date.
	profit, err = uc.UpdatePayoutStatus(ctx, order.ID, domain.PayoutPaid, "")
	if err != nil {
		t.Fatalf("UpdatePayoutStatus re-paid: %v", err)
	}
	if profit.PayoutDate == nil || !profit.PayoutDate.Equal(paidAt) {
		t.Errorf("payout date moved on re-entering paid: %v", profit.PayoutDate)
	}
}

func TestUpdatePayoutStatusSynthesizesProfitRow(t *testing.T) {
	db := newTestDB(t)
	uc := newProfitUsecase(db)
	ctx := context.Background()
	order := seedOrder(t, db, "100.00")

	// Status arrives before any costs were recorded.
	profit, err := uc.UpdatePayoutStatus(ctx, order.ID, domain.PayoutPaid, "")
	if err != nil {
		t.Fatalf("UpdatePayoutStatus: %v", err)
	}
	if !profit.ProductCost.IsZero() || !profit.GatewayCost.IsZero() {
		t.Errorf("synthesized row has nonzero costs: product=%s gateway=%s", profit.ProductCost, profit.GatewayCost)
	}
	// 100 - (0 + 0 + 5.00) = 95.00
	if !profit.NetProfit.Equal(decimal.RequireFromString("95.00")) {
		t.Errorf("net profit = %s, want 95.00", profit.NetProfit)
	}
	if profit.PayoutDate == nil {
		t.Error("payout date not set on first paid transition")
	}
}

func TestGetProfitStats(t *testing.T) {
	db := newTestDB(t)
	uc := newProfitUsecase(db)
	ctx := context.Background()

	first := seedOrder(t, db, "100.00")
	second := seedOrder(t, db, "200.00")

	if _, err := uc.RecordOrderCosts(ctx, first.ID, decimal.RequireFromString("30.00"), decimal.RequireFromString("2.9")); err != nil {
		t.Fatalf("RecordOrderCosts: %v", err)
	}
	if _, err := uc.UpdatePayoutStatus(ctx, first.ID, domain.PayoutPaid, ""); err != nil {
		t.Fatalf("UpdatePayoutStatus: %v", err)
	}
	if _, err := uc.RecordOrderCosts(ctx, second.ID, decimal.RequireFromString("50.00"), decimal.Zero); err != nil {
		t.Fatalf("RecordOrderCosts: %v", err)
	}

	stats, bySite, err := uc.GetProfitStats(ctx, "")
	if err != nil {
		t.Fatalf("GetProfitStats: %v", err)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("total orders = %d, want 2", stats.TotalOrders)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("total revenue = %s, want 300.00", stats.TotalRevenue)
	}
	if len(bySite) != 1 {
		t.Fatalf("site breakdown rows = %d, want 1", len(bySite))
	}
	if bySite[0].SiteID != "site-1" {
		t.Errorf("site id = %s", bySite[0].SiteID)
	}
}
