package mappers

import (
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
)

func ToDomainPartner(model *models.PartnerModel) *domain.Partner {
	return &domain.Partner{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMPartner(partner *domain.Partner) *models.PartnerModel {
	return &models.PartnerModel{
		ID:        partner.ID,
		Name:      partner.Name,
		Email:     partner.Email,
		IsActive:  partner.IsActive,
		CreatedAt: partner.CreatedAt,
		UpdatedAt: partner.UpdatedAt,
	}
}

func ToDomainSitePartner(model *models.SitePartnerModel) *domain.SitePartnerAssignment {
	return &domain.SitePartnerAssignment{
		ID:              model.ID,
		SiteID:          model.SiteID,
		PartnerID:       model.PartnerID,
		ShareType:       domain.ShareType(model.ShareType),
		SharePercentage: model.SharePercentage,
		IsActive:        model.IsActive,
	}
}

func ToGORMSitePartner(assignment *domain.SitePartnerAssignment) *models.SitePartnerModel {
	return &models.SitePartnerModel{
		ID:              assignment.ID,
		SiteID:          assignment.SiteID,
		PartnerID:       assignment.PartnerID,
		ShareType:       string(assignment.ShareType),
		SharePercentage: assignment.SharePercentage,
		IsActive:        assignment.IsActive,
	}
}

func ToDomainPartnerOrder(model *models.PartnerOrderModel) *domain.PartnerOrder {
	return &domain.PartnerOrder{
		ID:              model.ID,
		PartnerID:       model.PartnerID,
		OrderID:         model.OrderID,
		OrderTotal:      model.OrderTotal,
		ShareAmount:     model.ShareAmount,
		ShareType:       domain.ShareType(model.ShareType),
		SharePercentage: model.SharePercentage,
		IsPaid:          model.IsPaid,
		PaidAt:          model.PaidAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMPartnerOrder(po *domain.PartnerOrder) *models.PartnerOrderModel {
	return &models.PartnerOrderModel{
		ID:              po.ID,
		PartnerID:       po.PartnerID,
		OrderID:         po.OrderID,
		OrderTotal:      po.OrderTotal,
		ShareAmount:     po.ShareAmount,
		ShareType:       string(po.ShareType),
		SharePercentage: po.SharePercentage,
		IsPaid:          po.IsPaid,
		PaidAt:          po.PaidAt,
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}
}

func ToDomainRevenueShare(model *models.RevenueShareModel) *domain.RevenueShare {
	return &domain.RevenueShare{
		ID:                 model.ID,
		OrderID:            model.OrderID,
		PartnerID:          model.PartnerID,
		PartnerShareAmount: model.PartnerShareAmount,
		WebsiteShareAmount: model.WebsiteShareAmount,
		GatewayFeeAmount:   model.GatewayFeeAmount,
		ComputedAt:         model.ComputedAt,
	}
}

func ToGORMRevenueShare(share *domain.RevenueShare) *models.RevenueShareModel {
	return &models.RevenueShareModel{
		ID:                 share.ID,
		OrderID:            share.OrderID,
		PartnerID:          share.PartnerID,
		PartnerShareAmount: share.PartnerShareAmount,
		WebsiteShareAmount: share.WebsiteShareAmount,
		GatewayFeeAmount:   share.GatewayFeeAmount,
		ComputedAt:         share.ComputedAt,
	}
}
