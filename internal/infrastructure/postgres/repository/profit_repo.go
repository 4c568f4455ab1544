package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/mappers"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultProfitRepository struct {
	DB *gorm.DB
}

func NewDefaultProfitRepository(db *gorm.DB) *DefaultProfitRepository {
	return &DefaultProfitRepository{DB: db}
}

// UpsertOrderProfit keeps one profit row per order. payout_date is updated
// from the model, so callers must carry the stored date forward when the
// status is not transitioning into paid.
func (r *DefaultProfitRepository) UpsertOrderProfit(ctx context.Context, profit *domain.OrderProfit) error {
	if profit.ID == "" {
		profit.ID = uuid.NewString()
	}
	model := mappers.ToGORMOrderProfit(profit)
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"order_total", "product_cost", "gateway_cost_percentage",
			"gateway_cost", "operational_cost", "total_costs", "net_profit",
			"profit_margin", "payout_status", "payout_date", "notes",
			"is_calculated", "updated_at",
		}),
	}).Create(model).Error
}

func (r *DefaultProfitRepository) GetProfitByOrderID(ctx context.Context, orderID string) (*domain.OrderProfit, error) {
	var model models.OrderProfitModel
	err := r.DB.WithContext(ctx).First(&model, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfitNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrderProfit(&model), nil
}

func (r *DefaultProfitRepository) ListProfits(ctx context.Context, siteID string) ([]*domain.OrderProfit, error) {
	query := r.DB.WithContext(ctx).Model(&models.OrderProfitModel{})
	if siteID != "" {
		query = query.Where("site_id = ?", siteID)
	}
	var profitModels []models.OrderProfitModel
	if err := query.Order("created_at DESC").Find(&profitModels).Error; err != nil {
		return nil, err
	}
	profits := make([]*domain.OrderProfit, len(profitModels))
	for i := range profitModels {
		profits[i] = mappers.ToDomainOrderProfit(&profitModels[i])
	}
	return profits, nil
}

// GetProfitStats aggregates in the application rather than SQL so margin
// averaging stays consistent between postgres and the sqlite test driver.
func (r *DefaultProfitRepository) GetProfitStats(ctx context.Context, siteID string) (*domain.ProfitStats, []*domain.SiteProfitStats, error) {
	profits, err := r.ListProfits(ctx, siteID)
	if err != nil {
		return nil, nil, err
	}

	overall := &domain.ProfitStats{}
	perSite := make(map[string]*domain.SiteProfitStats)
	siteOrder := make([]string, 0)

	for _, p := range profits {
		overall.TotalOrders++
		overall.TotalRevenue = overall.TotalRevenue.Add(p.OrderTotal)
		overall.TotalCosts = overall.TotalCosts.Add(p.TotalCosts)
		overall.TotalProfit = overall.TotalProfit.Add(p.NetProfit)

		stats, ok := perSite[p.SiteID]
		if !ok {
			stats = &domain.SiteProfitStats{SiteID: p.SiteID}
			perSite[p.SiteID] = stats
			siteOrder = append(siteOrder, p.SiteID)
		}
		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(p.OrderTotal)
		stats.TotalCosts = stats.TotalCosts.Add(p.TotalCosts)
		stats.TotalProfit = stats.TotalProfit.Add(p.NetProfit)
	}

	if overall.TotalRevenue.IsPositive() {
		overall.AverageProfitMargin = overall.TotalProfit.
			Div(overall.TotalRevenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	siteStats := make([]*domain.SiteProfitStats, 0, len(siteOrder))
	for _, id := range siteOrder {
		stats := perSite[id]
		if stats.TotalRevenue.IsPositive() {
			stats.AverageProfitMargin = stats.TotalProfit.
				Div(stats.TotalRevenue).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		siteStats = append(siteStats, stats)
	}
	return overall, siteStats, nil
}
