package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/repository"
	reportdto "github.com/orderhub/order-hub-service/internal/usecase/dto/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newReportUsecase(db *gorm.DB) *DefaultReportUsecase {
	return NewDefaultReportUsecase(
		repository.NewDefaultOrderRepository(db),
		repository.NewDefaultGatewayRepository(db),
		repository.NewDefaultPartnerOrderRepository(db),
		repository.NewDefaultSiteRepository(db),
		repository.NewDefaultPartnerRepository(db),
		newAllocationUsecase(db),
		testLogger(),
	)
}

func seedReportOrder(t *testing.T, db *gorm.DB, wcOrderID, status, gateway, total string) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ID:                 uuid.NewString(),
		SiteID:             "site-1",
		WcOrderID:          wcOrderID,
		Status:             status,
		Currency:           "USD",
		OrderTotal:         decimal.RequireFromString(total),
		PaymentGatewayCode: gateway,
		SyncedAt:           time.Now(),
	}
	if err := repository.NewDefaultOrderRepository(db).UpsertOrder(context.Background(), order); err != nil {
		t.Fatalf("UpsertOrder: %v", err)
	}
	return order
}

func TestGatewayRevenueReport(t *testing.T) {
	db := newTestDB(t)
	uc := newReportUsecase(db)
	ctx := context.Background()

	pct := decimal.RequireFromString("2.9")
	err := uc.GatewayRepo.CreateGatewayDetails(ctx, &domain.PaymentGatewayDetails{
		ID:             uuid.NewString(),
		GatewayCode:    "stripe",
		FeeType:        domain.FeeTypePercentage,
		FeesPercentage: &pct,
	})
	if err != nil {
		t.Fatalf("CreateGatewayDetails: %v", err)
	}

	seedReportOrder(t, db, "100", "completed", "stripe", "100.00")
	seedReportOrder(t, db, "101", "processing", "stripe", "200.00")
	seedReportOrder(t, db, "102", "completed", "mystery-pay", "50.00")
	seedReportOrder(t, db, "103", "refunded", "stripe", "999.00")

	report, err := uc.GatewayRevenueReport(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GatewayRevenueReport: %v", err)
	}

	// The refunded order is excluded entirely.
	if report.OrdersIncluded != 3 {
		t.Errorf("orders included = %d, want 3", report.OrdersIncluded)
	}

	summaries := map[string]reportdto.GatewaySummary{}
	for _, s := range report.GatewaySummaries {
		summaries[s.GatewayCode] = s
	}
	stripe, ok := summaries["stripe"]
	if !ok {
		t.Fatalf("no stripe summary: %+v", report.GatewaySummaries)
	}
	mystery, ok := summaries["mystery-pay"]
	if !ok {
		t.Fatalf("no mystery-pay summary: %+v", report.GatewaySummaries)
	}

	if stripe.Orders != 2 {
		t.Errorf("stripe orders = %d, want 2", stripe.Orders)
	}
	if !stripe.GrossRevenue.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("stripe gross = %s, want 300.00", stripe.GrossRevenue)
	}
	// 2.9% of 100 + 2.9% of 200 = 2.90 + 5.80
	if !stripe.TotalFees.Equal(decimal.RequireFromString("8.70")) {
		t.Errorf("stripe fees = %s, want 8.70", stripe.TotalFees)
	}
	if !stripe.NetRevenue.Equal(decimal.RequireFromString("291.30")) {
		t.Errorf("stripe net = %s, want 291.30", stripe.NetRevenue)
	}

	// Unknown gateways count gross but never fees or net.
	if !mystery.GrossRevenue.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("mystery gross = %s, want 50.00", mystery.GrossRevenue)
	}
	if !mystery.TotalFees.IsZero() || !mystery.NetRevenue.IsZero() {
		t.Errorf("mystery fees/net = %s/%s, want 0/0", mystery.TotalFees, mystery.NetRevenue)
	}

	for _, row := range report.OrderRows {
		if row.GatewayCode == "mystery-pay" && row.GatewayFound {
			t.Error("unknown gateway flagged as found")
		}
	}
}

func TestGatewayRevenueReportDateRange(t *testing.T) {
	db := newTestDB(t)
	uc := newReportUsecase(db)
	ctx := context.Background()

	old := seedReportOrder(t, db, "100", "completed", "stripe", "100.00")
	old.SyncedAt = time.Now().Add(-72 * time.Hour)
	if err := repository.NewDefaultOrderRepository(db).UpsertOrder(ctx, old); err != nil {
		t.Fatalf("backdating order: %v", err)
	}
	seedReportOrder(t, db, "101", "completed", "stripe", "200.00")

	report, err := uc.GatewayRevenueReport(ctx, time.Now().Add(-24*time.Hour), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GatewayRevenueReport: %v", err)
	}
	if report.OrdersIncluded != 1 {
		t.Fatalf("orders included = %d, want 1", report.OrdersIncluded)
	}
	if report.OrderRows[0].WcOrderID != "101" {
		t.Errorf("wrong order in range: %s", report.OrderRows[0].WcOrderID)
	}
}

func TestDashboardTotals(t *testing.T) {
	db := newTestDB(t)
	uc := newReportUsecase(db)
	ctx := context.Background()

	siteUC := newSiteUsecase(t, db)
	active, err := siteUC.ProvisionSite(ctx, "Active", "https://active.example.com")
	if err != nil {
		t.Fatalf("ProvisionSite: %v", err)
	}
	if _, err := siteUC.ProvisionSite(ctx, "Dormant", "https://dormant.example.com"); err != nil {
		t.Fatalf("ProvisionSite: %v", err)
	}
	dormant, _ := uc.SiteRepo.GetSiteByBaseURL(ctx, "https://dormant.example.com")
	if err := uc.SiteRepo.SetSiteActive(ctx, dormant.ID, false); err != nil {
		t.Fatalf("SetSiteActive: %v", err)
	}
	_ = active

	seedReportOrder(t, db, "100", "completed", "stripe", "100.00")
	seedReportOrder(t, db, "101", "cancelled", "stripe", "40.00")

	partner := seedPartnerAssignment(t, db, "site-1", domain.ShareTypeRevenue, "10")
	order := seedReportOrder(t, db, "102", "completed", "stripe", "200.00")
	if err := newAllocationUsecase(db).AllocateOrder(ctx, order); err != nil {
		t.Fatalf("AllocateOrder: %v", err)
	}

	totals, err := uc.DashboardTotals(ctx)
	if err != nil {
		t.Fatalf("DashboardTotals: %v", err)
	}
	// Cancelled order excluded: 100 + 200.
	if totals.TotalOrders != 2 {
		t.Errorf("total orders = %d, want 2", totals.TotalOrders)
	}
	if !totals.TotalRevenue.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("total revenue = %s, want 300.00", totals.TotalRevenue)
	}
	if !totals.PartnerPayoutsOwed.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("payouts owed = %s, want 20.00", totals.PartnerPayoutsOwed)
	}
	if totals.ActiveSites != 1 {
		t.Errorf("active sites = %d, want 1", totals.ActiveSites)
	}

	// Paying the partner removes the liability.
	partnerOrders, _ := uc.PartnerOrderRepo.ListPartnerOrdersByOrder(ctx, order.ID)
	if len(partnerOrders) != 1 {
		t.Fatalf("partner order count = %d", len(partnerOrders))
	}
	if err := uc.PartnerOrderRepo.MarkPartnerOrderPaid(ctx, partnerOrders[0].ID, time.Now()); err != nil {
		t.Fatalf("MarkPartnerOrderPaid: %v", err)
	}
	totals, err = uc.DashboardTotals(ctx)
	if err != nil {
		t.Fatalf("DashboardTotals after payout: %v", err)
	}
	if !totals.PartnerPayoutsOwed.IsZero() {
		t.Errorf("payouts owed = %s after settlement, want 0", totals.PartnerPayoutsOwed)
	}
	_ = partner
}
