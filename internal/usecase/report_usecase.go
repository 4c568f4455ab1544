package usecase

import (
	"context"
	"time"

	"github.com/orderhub/order-hub-service/internal/domain"
	reportdto "github.com/orderhub/order-hub-service/internal/usecase/dto/report"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Orders in these statuses never contribute revenue to reports.
var excludedReportStatuses = []string{"cancelled", "refunded"}

type ReportUsecase interface {
	GatewayRevenueReport(ctx context.Context, from, to time.Time) (*reportdto.GatewayRevenueReport, error)
	DashboardTotals(ctx context.Context) (*reportdto.DashboardTotals, error)
}

type DefaultReportUsecase struct {
	OrderRepo        domain.OrderRepository
	GatewayRepo      domain.GatewayRepository
	PartnerOrderRepo domain.PartnerOrderRepository
	SiteRepo         domain.SiteRepository
	PartnerRepo      domain.PartnerRepository
	Allocator        AllocationUsecase
	Log              *logrus.Logger
}

func NewDefaultReportUsecase(
	orderRepo domain.OrderRepository,
	gatewayRepo domain.GatewayRepository,
	partnerOrderRepo domain.PartnerOrderRepository,
	siteRepo domain.SiteRepository,
	partnerRepo domain.PartnerRepository,
	allocator AllocationUsecase,
	log *logrus.Logger) *DefaultReportUsecase {

	return &DefaultReportUsecase{
		OrderRepo:        orderRepo,
		GatewayRepo:      gatewayRepo,
		PartnerOrderRepo: partnerOrderRepo,
		SiteRepo:         siteRepo,
		PartnerRepo:      partnerRepo,
		Allocator:        allocator,
		Log:              log,
	}
}

// GatewayRevenueReport recomputes the fee split for every order synced in
// the range. Orders with an unrecognized gateway are counted but contribute
// zero revenue rather than failing the report.
func (uc *DefaultReportUsecase) GatewayRevenueReport(ctx context.Context, from, to time.Time) (*reportdto.GatewayRevenueReport, error) {
	orders, err := uc.ordersInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	partnerNames := map[string]string{}
	if partners, err := uc.GatewayRepo.ListGatewayPartners(ctx); err == nil {
		for _, p := range partners {
			partnerNames[p.ID] = p.PartnerName
		}
	}

	report := &reportdto.GatewayRevenueReport{}
	gatewayIndex := map[string]*reportdto.GatewaySummary{}
	partnerIndex := map[string]*reportdto.GatewayPartnerSummary{}

	for _, order := range orders {
		split, err := uc.Allocator.GatewaySplit(ctx, order)
		if err != nil {
			uc.Log.WithError(err).WithField("order_id", order.ID).Warn("gateway split failed in report")
			report.OrdersSkipped++
			continue
		}

		row := reportdto.OrderRevenueRow{
			OrderID:      order.ID,
			WcOrderID:    order.WcOrderID,
			SiteID:       order.SiteID,
			GatewayCode:  order.PaymentGatewayCode,
			OrderTotal:   order.OrderTotal,
			GatewayFee:   split.GatewayFee,
			NetRevenue:   split.NetRevenue,
			GatewayFound: split.GatewayFound,
		}
		report.OrderRows = append(report.OrderRows, row)
		report.OrdersIncluded++

		summary, ok := gatewayIndex[order.PaymentGatewayCode]
		if !ok {
			summary = &reportdto.GatewaySummary{GatewayCode: order.PaymentGatewayCode}
			gatewayIndex[order.PaymentGatewayCode] = summary
		}
		summary.Orders++
		summary.GrossRevenue = summary.GrossRevenue.Add(order.OrderTotal)
		if split.GatewayFound {
			summary.TotalFees = summary.TotalFees.Add(split.GatewayFee)
			summary.NetRevenue = summary.NetRevenue.Add(split.NetRevenue)
		}

		for partnerID, share := range split.PartnerShares {
			summary.PartnerRevenue = summary.PartnerRevenue.Add(share)
			ps, ok := partnerIndex[partnerID]
			if !ok {
				ps = &reportdto.GatewayPartnerSummary{
					GatewayPartnerID: partnerID,
					PartnerName:      partnerNames[partnerID],
				}
				partnerIndex[partnerID] = ps
			}
			ps.Revenue = ps.Revenue.Add(share)
			ps.Orders++
		}
	}

	for _, summary := range gatewayIndex {
		report.GatewaySummaries = append(report.GatewaySummaries, *summary)
	}
	for _, ps := range partnerIndex {
		report.PartnerSummaries = append(report.PartnerSummaries, *ps)
	}
	return report, nil
}

func (uc *DefaultReportUsecase) DashboardTotals(ctx context.Context) (*reportdto.DashboardTotals, error) {
	totals := &reportdto.DashboardTotals{}

	orders, total, err := uc.OrderRepo.ListOrders(ctx, domain.OrderFilters{
		ExcludeStatuses: excludedReportStatuses,
	}, 1, 10000)
	if err != nil {
		return nil, err
	}
	totals.TotalOrders = total
	for _, order := range orders {
		totals.TotalRevenue = totals.TotalRevenue.Add(order.OrderTotal)
	}

	partners, err := uc.PartnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, err
	}
	owed := decimal.Zero
	for _, partner := range partners {
		partnerOrders, err := uc.PartnerOrderRepo.ListPartnerOrdersByPartner(ctx, partner.ID)
		if err != nil {
			return nil, err
		}
		for _, po := range partnerOrders {
			if !po.IsPaid {
				owed = owed.Add(po.ShareAmount)
			}
		}
	}
	totals.PartnerPayoutsOwed = owed

	sites, err := uc.SiteRepo.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	for _, site := range sites {
		if site.IsActive {
			totals.ActiveSites++
		}
	}
	return totals, nil
}

func (uc *DefaultReportUsecase) ordersInRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	filters := domain.OrderFilters{ExcludeStatuses: excludedReportStatuses}
	if !from.IsZero() {
		filters.SyncedFrom = &from
	}
	if !to.IsZero() {
		filters.SyncedTo = &to
	}
	orders, _, err := uc.OrderRepo.ListOrders(ctx, filters, 1, 10000)
	return orders, err
}
