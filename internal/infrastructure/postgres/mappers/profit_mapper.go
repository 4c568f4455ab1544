package mappers

import (
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
)

func ToDomainOrderProfit(model *models.OrderProfitModel) *domain.OrderProfit {
	return &domain.OrderProfit{
		ID:                    model.ID,
		OrderID:               model.OrderID,
		SiteID:                model.SiteID,
		WcOrderID:             model.WcOrderID,
		OrderTotal:            model.OrderTotal,
		ProductCost:           model.ProductCost,
		GatewayCostPercentage: model.GatewayCostPercentage,
		GatewayCost:           model.GatewayCost,
		OperationalCost:       model.OperationalCost,
		TotalCosts:            model.TotalCosts,
		NetProfit:             model.NetProfit,
		ProfitMargin:          model.ProfitMargin,
		PayoutStatus:          domain.PayoutStatus(model.PayoutStatus),
		PayoutDate:            model.PayoutDate,
		Notes:                 model.Notes,
		IsCalculated:          model.IsCalculated,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func ToGORMOrderProfit(profit *domain.OrderProfit) *models.OrderProfitModel {
	return &models.OrderProfitModel{
		ID:                    profit.ID,
		OrderID:               profit.OrderID,
		SiteID:                profit.SiteID,
		WcOrderID:             profit.WcOrderID,
		OrderTotal:            profit.OrderTotal,
		ProductCost:           profit.ProductCost,
		GatewayCostPercentage: profit.GatewayCostPercentage,
		GatewayCost:           profit.GatewayCost,
		OperationalCost:       profit.OperationalCost,
		TotalCosts:            profit.TotalCosts,
		NetProfit:             profit.NetProfit,
		ProfitMargin:          profit.ProfitMargin,
		PayoutStatus:          string(profit.PayoutStatus),
		PayoutDate:            profit.PayoutDate,
		Notes:                 profit.Notes,
		IsCalculated:          profit.IsCalculated,
		CreatedAt:             profit.CreatedAt,
		UpdatedAt:             profit.UpdatedAt,
	}
}

func ToDomainShipment(model *models.ShipmentModel) *domain.Shipment {
	return &domain.Shipment{
		ID:                model.ID,
		OrderID:           model.OrderID,
		TrackingNumber:    model.TrackingNumber,
		Carrier:           model.Carrier,
		Status:            model.Status,
		TrackingURL:       model.TrackingURL,
		ShippedAt:         model.ShippedAt,
		EstimatedDelivery: model.EstimatedDelivery,
		DeliveredAt:       model.DeliveredAt,
		Notes:             model.Notes,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMShipment(shipment *domain.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:                shipment.ID,
		OrderID:           shipment.OrderID,
		TrackingNumber:    shipment.TrackingNumber,
		Carrier:           shipment.Carrier,
		Status:            shipment.Status,
		TrackingURL:       shipment.TrackingURL,
		ShippedAt:         shipment.ShippedAt,
		EstimatedDelivery: shipment.EstimatedDelivery,
		DeliveredAt:       shipment.DeliveredAt,
		Notes:             shipment.Notes,
		CreatedAt:         shipment.CreatedAt,
		UpdatedAt:         shipment.UpdatedAt,
	}
}
