package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/mappers"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// UpsertOrder inserts or updates the order row keyed by
// (site_id, wc_order_id) and replaces its line items wholesale. The
// ON CONFLICT clause makes concurrent syncs of the same external order
// converge on one row instead of duplicating it.
func (r *DefaultOrderRepository) UpsertOrder(ctx context.Context, order *domain.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := mappers.ToGORMOrder(order)
		items := model.Items
		model.Items = nil

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "site_id"}, {Name: "wc_order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "currency", "order_total", "subtotal",
				"discount_total", "shipping_total", "tax_total",
				"payment_gateway_code", "customer_name", "customer_email",
				"customer_phone", "shipping_address", "billing_address",
				"placed_at", "synced_at",
			}),
		}).Create(model).Error
		if err != nil {
			return fmt.Errorf("upserting order: %w", err)
		}

		// On conflict the durable id is the stored one, not the freshly
		// generated model.ID; read it back before touching items.
		var stored models.OrderModel
		if err := tx.Select("id").
			First(&stored, "site_id = ? AND wc_order_id = ?", order.SiteID, order.WcOrderID).Error; err != nil {
			return err
		}
		order.ID = stored.ID

		if err := tx.Where("order_id = ?", stored.ID).Delete(&models.OrderItemModel{}).Error; err != nil {
			return fmt.Errorf("removing stale order items: %w", err)
		}

		for i := range items {
			items[i].OrderID = stored.ID
			if items[i].ID == "" {
				items[i].ID = uuid.NewString()
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("inserting order items: %w", err)
			}
		}

		for i := range items {
			if i < len(order.Items) {
				order.Items[i].ID = items[i].ID
				order.Items[i].OrderID = stored.ID
			}
		}
		return nil
	})
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var model models.OrderModel
	err := r.DB.WithContext(ctx).Preload("Items").First(&model, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) GetOrderBySiteAndWcOrderID(ctx context.Context, siteID, wcOrderID string) (*domain.Order, error) {
	var model models.OrderModel
	err := r.DB.WithContext(ctx).Preload("Items").
		First(&model, "site_id = ? AND wc_order_id = ?", siteID, wcOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) ListOrders(ctx context.Context, filters domain.OrderFilters, page, pageSize int) ([]*domain.Order, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.OrderModel{})

	if filters.SiteID != "" {
		query = query.Where("site_id = ?", filters.SiteID)
	}
	if filters.Status != "" {
		query = query.Where("LOWER(status) = LOWER(?)", filters.Status)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("wc_order_id LIKE ? OR customer_name LIKE ?", like, like)
	}
	for _, excluded := range filters.ExcludeStatuses {
		query = query.Where("LOWER(status) <> LOWER(?)", excluded)
	}
	if filters.SyncedFrom != nil {
		query = query.Where("synced_at >= ?", *filters.SyncedFrom)
	}
	if filters.SyncedTo != nil {
		query = query.Where("synced_at <= ?", *filters.SyncedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	var orderModels []models.OrderModel
	err := query.Preload("Items").
		Order("synced_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	result := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) UpdateOrderGateway(ctx context.Context, orderID, gatewayCode string) error {
	result := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_gateway_code": gatewayCode,
			"synced_at":            time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

type DefaultShippingUpdateRepository struct {
	DB *gorm.DB
}

func NewDefaultShippingUpdateRepository(db *gorm.DB) *DefaultShippingUpdateRepository {
	return &DefaultShippingUpdateRepository{DB: db}
}

func (r *DefaultShippingUpdateRepository) CreateShippingUpdate(ctx context.Context, update *domain.ShippingUpdate) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMShippingUpdate(update)).Error
}

func (r *DefaultShippingUpdateRepository) ListShippingUpdatesByOrder(ctx context.Context, orderID string) ([]*domain.ShippingUpdate, error) {
	var updateModels []models.ShippingUpdateModel
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at").
		Find(&updateModels).Error
	if err != nil {
		return nil, err
	}
	updates := make([]*domain.ShippingUpdate, len(updateModels))
	for i := range updateModels {
		updates[i] = mappers.ToDomainShippingUpdate(&updateModels[i])
	}
	return updates, nil
}
