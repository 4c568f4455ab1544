package mappers

import (
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i := range model.Items {
		items[i] = *ToDomainOrderItem(&model.Items[i])
	}
	return &domain.Order{
		ID:                 model.ID,
		SiteID:             model.SiteID,
		WcOrderID:          model.WcOrderID,
		Status:             model.Status,
		Currency:           model.Currency,
		OrderTotal:         model.OrderTotal,
		Subtotal:           model.Subtotal,
		DiscountTotal:      model.DiscountTotal,
		ShippingTotal:      model.ShippingTotal,
		TaxTotal:           model.TaxTotal,
		PaymentGatewayCode: model.PaymentGatewayCode,
		CustomerName:       model.CustomerName,
		CustomerEmail:      model.CustomerEmail,
		CustomerPhone:      model.CustomerPhone,
		ShippingAddress:    model.ShippingAddress,
		BillingAddress:     model.BillingAddress,
		PlacedAt:           model.PlacedAt,
		SyncedAt:           model.SyncedAt,
		Items:              items,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i := range order.Items {
		items[i] = *ToGORMOrderItem(&order.Items[i])
	}
	return &models.OrderModel{
		ID:                 order.ID,
		SiteID:             order.SiteID,
		WcOrderID:          order.WcOrderID,
		Status:             order.Status,
		Currency:           order.Currency,
		OrderTotal:         order.OrderTotal,
		Subtotal:           order.Subtotal,
		DiscountTotal:      order.DiscountTotal,
		ShippingTotal:      order.ShippingTotal,
		TaxTotal:           order.TaxTotal,
		PaymentGatewayCode: order.PaymentGatewayCode,
		CustomerName:       order.CustomerName,
		CustomerEmail:      order.CustomerEmail,
		CustomerPhone:      order.CustomerPhone,
		ShippingAddress:    order.ShippingAddress,
		BillingAddress:     order.BillingAddress,
		PlacedAt:           order.PlacedAt,
		SyncedAt:           order.SyncedAt,
		Items:              items,
	}
}

func ToDomainOrderItem(model *models.OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		ID:        model.ID,
		OrderID:   model.OrderID,
		ProductID: model.ProductID,
		Sku:       model.Sku,
		Name:      model.Name,
		Quantity:  model.Quantity,
		Price:     model.Price,
		Subtotal:  model.Subtotal,
		Total:     model.Total,
	}
}

func ToGORMOrderItem(item *domain.OrderItem) *models.OrderItemModel {
	return &models.OrderItemModel{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Sku:       item.Sku,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Subtotal:  item.Subtotal,
		Total:     item.Total,
	}
}

func ToDomainShippingUpdate(model *models.ShippingUpdateModel) *domain.ShippingUpdate {
	return &domain.ShippingUpdate{
		ID:             model.ID,
		OrderID:        model.OrderID,
		Status:         model.Status,
		Provider:       model.Provider,
		TrackingNumber: model.TrackingNumber,
		Payload:        model.Payload,
		OccurredAt:     model.OccurredAt,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMShippingUpdate(update *domain.ShippingUpdate) *models.ShippingUpdateModel {
	return &models.ShippingUpdateModel{
		ID:             update.ID,
		OrderID:        update.OrderID,
		Status:         update.Status,
		Provider:       update.Provider,
		TrackingNumber: update.TrackingNumber,
		Payload:        update.Payload,
		OccurredAt:     update.OccurredAt,
		CreatedAt:      update.CreatedAt,
	}
}
