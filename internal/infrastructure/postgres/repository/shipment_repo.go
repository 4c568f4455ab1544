package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/mappers"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultShipmentRepository struct {
	DB *gorm.DB
}

func NewDefaultShipmentRepository(db *gorm.DB) *DefaultShipmentRepository {
	return &DefaultShipmentRepository{DB: db}
}

func (r *DefaultShipmentRepository) CreateShipment(ctx context.Context, shipment *domain.Shipment) error {
	if shipment.ID == "" {
		shipment.ID = uuid.NewString()
	}
	err := r.DB.WithContext(ctx).Create(mappers.ToGORMShipment(shipment)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrShipmentExists
	}
	return err
}

func (r *DefaultShipmentRepository) GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	var model models.ShipmentModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", shipmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainShipment(&model), nil
}

func (r *DefaultShipmentRepository) GetShipmentByOrderID(ctx context.Context, orderID string) (*domain.Shipment, error) {
	var model models.ShipmentModel
	err := r.DB.WithContext(ctx).First(&model, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainShipment(&model), nil
}

func (r *DefaultShipmentRepository) ListShipments(ctx context.Context, status string) ([]*domain.Shipment, error) {
	query := r.DB.WithContext(ctx).Model(&models.ShipmentModel{})
	if status != "" {
		query = query.Where("LOWER(status) = LOWER(?)", status)
	}
	var shipmentModels []models.ShipmentModel
	if err := query.Order("created_at DESC").Find(&shipmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainShipments(shipmentModels), nil
}

func (r *DefaultShipmentRepository) ListTrackableShipments(ctx context.Context) ([]*domain.Shipment, error) {
	var shipmentModels []models.ShipmentModel
	err := r.DB.WithContext(ctx).
		Where("tracking_number <> ''").
		Where("LOWER(status) NOT IN ?", []string{string(domain.ShipmentDelivered)}).
		Find(&shipmentModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainShipments(shipmentModels), nil
}

func (r *DefaultShipmentRepository) UpdateShipment(ctx context.Context, shipment *domain.Shipment) error {
	result := r.DB.WithContext(ctx).Model(&models.ShipmentModel{}).
		Where("id = ?", shipment.ID).
		Updates(map[string]interface{}{
			"tracking_number":    shipment.TrackingNumber,
			"carrier":            shipment.Carrier,
			"status":             shipment.Status,
			"tracking_url":       shipment.TrackingURL,
			"shipped_at":         shipment.ShippedAt,
			"estimated_delivery": shipment.EstimatedDelivery,
			"delivered_at":       shipment.DeliveredAt,
			"notes":              shipment.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

func (r *DefaultShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string) error {
	result := r.DB.WithContext(ctx).Delete(&models.ShipmentModel{}, "id = ?", shipmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

func toDomainShipments(shipmentModels []models.ShipmentModel) []*domain.Shipment {
	shipments := make([]*domain.Shipment, len(shipmentModels))
	for i := range shipmentModels {
		shipments[i] = mappers.ToDomainShipment(&shipmentModels[i])
	}
	return shipments
}
