package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	hundred = decimal.NewFromInt(100)
	// Fixed cost ratio applied when estimating profit without real cost
	// data: 70% of the order total is assumed spent.
	assumedCostRatio = decimal.NewFromFloat(0.70)
)

type AllocationUsecase interface {
	// AllocateOrder runs the site-partner split for one order. Zero active
	// assignments is not an error.
	AllocateOrder(ctx context.Context, order *domain.Order) error
	// GatewaySplit resolves the fee schedule and gateway-partner shares for
	// one order.
	GatewaySplit(ctx context.Context, order *domain.Order) (*GatewaySplitResult, error)
}

// GatewaySplitResult carries the fee math for one order. PartnerShares is
// keyed by gateway partner id.
type GatewaySplitResult struct {
	GatewayFee    decimal.Decimal
	NetRevenue    decimal.Decimal
	PartnerShares map[string]decimal.Decimal
	GatewayFound  bool
}

type DefaultAllocationUsecase struct {
	PartnerRepo      domain.PartnerRepository
	PartnerOrderRepo domain.PartnerOrderRepository
	RevenueShareRepo domain.RevenueShareRepository
	GatewayRepo      domain.GatewayRepository
	Metrics          *metrics.HubMetrics
	Log              *logrus.Logger
}

func NewDefaultAllocationUsecase(
	partnerRepo domain.PartnerRepository,
	partnerOrderRepo domain.PartnerOrderRepository,
	revenueShareRepo domain.RevenueShareRepository,
	gatewayRepo domain.GatewayRepository,
	hubMetrics *metrics.HubMetrics,
	log *logrus.Logger) *DefaultAllocationUsecase {

	return &DefaultAllocationUsecase{
		PartnerRepo:      partnerRepo,
		PartnerOrderRepo: partnerOrderRepo,
		RevenueShareRepo: revenueShareRepo,
		GatewayRepo:      gatewayRepo,
		Metrics:          hubMetrics,
		Log:              log,
	}
}

func (uc *DefaultAllocationUsecase) AllocateOrder(ctx context.Context, order *domain.Order) error {
	assignments, err := uc.PartnerRepo.ListActiveSitePartnerAssignments(ctx, order.SiteID)
	if err != nil {
		return fmt.Errorf("loading partner assignments: %w", err)
	}
	if len(assignments) == 0 {
		uc.Metrics.AllocationWarnings.WithLabelValues(order.SiteID).Inc()
		uc.Log.WithFields(logrus.Fields{
			"site_id":  order.SiteID,
			"order_id": order.ID,
		}).Debug("no active partner assignments for order")
		return nil
	}

	for _, assignment := range assignments {
		share := partnerShareAmount(order.OrderTotal, assignment)
		err := uc.PartnerOrderRepo.UpsertPartnerOrder(ctx, &domain.PartnerOrder{
			PartnerID:       assignment.PartnerID,
			OrderID:         order.ID,
			OrderTotal:      order.OrderTotal,
			ShareAmount:     share,
			ShareType:       assignment.ShareType,
			SharePercentage: assignment.SharePercentage,
			CreatedAt:       time.Now().UTC(),
			UpdatedAt:       time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("upserting partner order for %s: %w", assignment.PartnerID, err)
		}
	}

	if err := uc.replaceLegacyRevenueShares(ctx, order, assignments); err != nil {
		return err
	}
	return nil
}

// partnerShareAmount computes the partner's cut of one order. Profit-type
// assignments estimate profit as order_total * (1 - assumedCostRatio) first.
func partnerShareAmount(orderTotal decimal.Decimal, assignment *domain.SitePartnerAssignment) decimal.Decimal {
	base := orderTotal
	if assignment.ShareType == domain.ShareTypeProfit {
		base = orderTotal.Mul(decimal.NewFromInt(1).Sub(assumedCostRatio))
	}
	return base.Mul(assignment.SharePercentage.Div(hundred)).Round(2)
}

// replaceLegacyRevenueShares maintains the older 3-way split table some
// reports still read. The gateway fee column is recorded as zero here; the
// fee-aware math lives in GatewaySplit.
func (uc *DefaultAllocationUsecase) replaceLegacyRevenueShares(ctx context.Context, order *domain.Order, assignments []*domain.SitePartnerAssignment) error {
	websitePercent := decimal.Zero
	if sg, err := uc.GatewayRepo.GetSiteGateway(ctx, order.SiteID, order.PaymentGatewayCode); err == nil {
		websitePercent = sg.WebsiteSharePercent
	}

	shares := make([]*domain.RevenueShare, 0, len(assignments))
	for _, assignment := range assignments {
		shares = append(shares, &domain.RevenueShare{
			ID:                 uuid.NewString(),
			OrderID:            order.ID,
			PartnerID:          assignment.PartnerID,
			PartnerShareAmount: order.OrderTotal.Mul(assignment.SharePercentage.Div(hundred)).Round(2),
			WebsiteShareAmount: order.OrderTotal.Mul(websitePercent.Div(hundred)).Round(2),
			GatewayFeeAmount:   decimal.Zero,
			ComputedAt:         time.Now().UTC(),
		})
	}

	if err := uc.RevenueShareRepo.ReplaceRevenueShares(ctx, order.ID, shares); err != nil {
		return fmt.Errorf("replacing revenue shares: %w", err)
	}
	return nil
}

func (uc *DefaultAllocationUsecase) GatewaySplit(ctx context.Context, order *domain.Order) (*GatewaySplitResult, error) {
	result := &GatewaySplitResult{
		NetRevenue:    order.OrderTotal,
		PartnerShares: map[string]decimal.Decimal{},
	}

	details, err := uc.GatewayRepo.GetGatewayDetailsByCode(ctx, order.PaymentGatewayCode)
	if err != nil {
		if err == domain.ErrGatewayNotFound {
			return result, nil
		}
		return nil, err
	}
	result.GatewayFound = true
	result.GatewayFee = gatewayFee(order.OrderTotal, details)
	result.NetRevenue = order.OrderTotal.Sub(result.GatewayFee)

	assignments, err := uc.GatewayRepo.ListActiveAssignments(ctx)
	if err != nil {
		return nil, err
	}
	for _, assignment := range assignments {
		if assignment.PaymentGatewayID != details.ID {
			continue
		}
		share := result.NetRevenue.Mul(assignment.AssignmentPercentage.Div(hundred)).Round(2)
		result.PartnerShares[assignment.GatewayPartnerID] = share
	}
	return result, nil
}

func gatewayFee(orderTotal decimal.Decimal, details *domain.PaymentGatewayDetails) decimal.Decimal {
	switch details.FeeType {
	case domain.FeeTypePercentage:
		if details.FeesPercentage == nil {
			return decimal.Zero
		}
		return orderTotal.Mul(details.FeesPercentage.Div(hundred)).Round(2)
	case domain.FeeTypeFixed:
		if details.FeesFixed == nil {
			return decimal.Zero
		}
		return *details.FeesFixed
	default:
		return decimal.Zero
	}
}
