package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// operationalCost is the flat per-order handling cost charged once an
// order is paid out.
var operationalCost = decimal.NewFromFloat(5.00)

// PayoutComputation is the deterministic output of the payout formulas.
// Reports depend on these numbers being reproducible, so the math lives in
// one pure function.
type PayoutComputation struct {
	GatewayCost  decimal.Decimal
	TotalCosts   decimal.Decimal
	NetProfit    decimal.Decimal
	ProfitMargin decimal.Decimal
}

// ComputePayout derives profit figures for one order. processing (and any
// unrecognized status) reports only the sunk exposure: operational cost is
// excluded because it is not incurred until the order completes. refunded
// writes off the full total plus sunk costs at a fixed -100 margin.
func ComputePayout(orderTotal, productCost, gatewayCostPercentage decimal.Decimal, status domain.PayoutStatus) PayoutComputation {
	gatewayCost := orderTotal.Mul(gatewayCostPercentage.Div(hundred)).Round(2)
	totalCosts := productCost.Add(gatewayCost).Add(operationalCost)

	comp := PayoutComputation{
		GatewayCost: gatewayCost,
		TotalCosts:  totalCosts,
	}

	switch status {
	case domain.PayoutPaid:
		comp.NetProfit = orderTotal.Sub(totalCosts)
		if orderTotal.IsZero() {
			comp.ProfitMargin = decimal.Zero
		} else {
			comp.ProfitMargin = comp.NetProfit.Div(orderTotal).Mul(hundred).Round(2)
		}
	case domain.PayoutRefunded:
		comp.NetProfit = orderTotal.Add(gatewayCost).Add(productCost).Neg()
		comp.ProfitMargin = hundred.Neg()
	default:
		comp.NetProfit = gatewayCost.Add(productCost).Neg()
		comp.ProfitMargin = decimal.Zero
	}
	return comp
}

type ProfitUsecase interface {
	RecordOrderCosts(ctx context.Context, orderID string, productCost, gatewayCostPercentage decimal.Decimal) (*domain.OrderProfit, error)
	UpdatePayoutStatus(ctx context.Context, orderID string, status domain.PayoutStatus, notes string) (*domain.OrderProfit, error)
	GetProfitByOrderID(ctx context.Context, orderID string) (*domain.OrderProfit, error)
	GetProfitStats(ctx context.Context, siteID string) (*domain.ProfitStats, []*domain.SiteProfitStats, error)
}

type DefaultProfitUsecase struct {
	ProfitRepo domain.ProfitRepository
	OrderRepo  domain.OrderRepository
	Log        *logrus.Logger

	Now func() time.Time
}

func NewDefaultProfitUsecase(profitRepo domain.ProfitRepository, orderRepo domain.OrderRepository, log *logrus.Logger) *DefaultProfitUsecase {
	return &DefaultProfitUsecase{
		ProfitRepo: profitRepo,
		OrderRepo:  orderRepo,
		Log:        log,
		Now:        time.Now,
	}
}

// RecordOrderCosts stores the cost inputs for an order and recomputes its
// profit under the current payout status.
func (uc *DefaultProfitUsecase) RecordOrderCosts(ctx context.Context, orderID string, productCost, gatewayCostPercentage decimal.Decimal) (*domain.OrderProfit, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	profit, err := uc.ProfitRepo.GetProfitByOrderID(ctx, orderID)
	if err != nil {
		if err != domain.ErrProfitNotFound {
			return nil, err
		}
		profit = uc.newProfitRow(order)
	}

	profit.ProductCost = productCost
	profit.GatewayCostPercentage = gatewayCostPercentage
	profit.OrderTotal = order.OrderTotal
	uc.applyComputation(profit)

	if err := uc.ProfitRepo.UpsertOrderProfit(ctx, profit); err != nil {
		return nil, fmt.Errorf("saving order profit: %w", err)
	}
	return profit, nil
}

// UpdatePayoutStatus moves an order through the payout state machine.
// Re-entering the current state is legal and just recomputes. A missing
// profit row is synthesized with zero costs so a status arriving before
// cost entry still lands.
func (uc *DefaultProfitUsecase) UpdatePayoutStatus(ctx context.Context, orderID string, status domain.PayoutStatus, notes string) (*domain.OrderProfit, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	profit, err := uc.ProfitRepo.GetProfitByOrderID(ctx, orderID)
	if err != nil {
		if err != domain.ErrProfitNotFound {
			return nil, err
		}
		profit = uc.newProfitRow(order)
	}

	profit.PayoutStatus = status
	if notes != "" {
		profit.Notes = notes
	}
	// payout_date marks the first transition into paid and is never
	// cleared, even when the order later refunds.
	if status == domain.PayoutPaid && profit.PayoutDate == nil {
		now := uc.Now().UTC()
		profit.PayoutDate = &now
	}

	uc.applyComputation(profit)

	if err := uc.ProfitRepo.UpsertOrderProfit(ctx, profit); err != nil {
		return nil, fmt.Errorf("saving order profit: %w", err)
	}

	uc.Log.WithFields(logrus.Fields{
		"order_id":      orderID,
		"payout_status": status,
	}).Info("payout status updated")
	return profit, nil
}

func (uc *DefaultProfitUsecase) GetProfitByOrderID(ctx context.Context, orderID string) (*domain.OrderProfit, error) {
	return uc.ProfitRepo.GetProfitByOrderID(ctx, orderID)
}

func (uc *DefaultProfitUsecase) GetProfitStats(ctx context.Context, siteID string) (*domain.ProfitStats, []*domain.SiteProfitStats, error) {
	return uc.ProfitRepo.GetProfitStats(ctx, siteID)
}

func (uc *DefaultProfitUsecase) newProfitRow(order *domain.Order) *domain.OrderProfit {
	return &domain.OrderProfit{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		SiteID:       order.SiteID,
		WcOrderID:    order.WcOrderID,
		OrderTotal:   order.OrderTotal,
		PayoutStatus: domain.PayoutProcessing,
		CreatedAt:    uc.Now().UTC(),
	}
}

func (uc *DefaultProfitUsecase) applyComputation(profit *domain.OrderProfit) {
	comp := ComputePayout(profit.OrderTotal, profit.ProductCost, profit.GatewayCostPercentage, profit.PayoutStatus)
	profit.GatewayCost = comp.GatewayCost
	profit.OperationalCost = operationalCost
	profit.TotalCosts = comp.TotalCosts
	profit.NetProfit = comp.NetProfit
	profit.ProfitMargin = comp.ProfitMargin
	profit.IsCalculated = true
	profit.UpdatedAt = uc.Now().UTC()
}
