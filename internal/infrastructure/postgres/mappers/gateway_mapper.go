package mappers

import (
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
)

func ToDomainGatewayDetails(model *models.PaymentGatewayDetailsModel) *domain.PaymentGatewayDetails {
	return &domain.PaymentGatewayDetails{
		ID:             model.ID,
		GatewayCode:    model.GatewayCode,
		Descriptor:     model.Descriptor,
		FeeType:        domain.FeeType(model.FeeType),
		FeesPercentage: model.FeesPercentage,
		FeesFixed:      model.FeesFixed,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMGatewayDetails(details *domain.PaymentGatewayDetails) *models.PaymentGatewayDetailsModel {
	return &models.PaymentGatewayDetailsModel{
		ID:             details.ID,
		GatewayCode:    details.GatewayCode,
		Descriptor:     details.Descriptor,
		FeeType:        string(details.FeeType),
		FeesPercentage: details.FeesPercentage,
		FeesFixed:      details.FeesFixed,
		CreatedAt:      details.CreatedAt,
		UpdatedAt:      details.UpdatedAt,
	}
}

func ToDomainGatewayPartner(model *models.GatewayPartnerModel) *domain.GatewayPartner {
	return &domain.GatewayPartner{
		ID:          model.ID,
		PartnerName: model.PartnerName,
		PartnerCode: model.PartnerCode,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMGatewayPartner(partner *domain.GatewayPartner) *models.GatewayPartnerModel {
	return &models.GatewayPartnerModel{
		ID:          partner.ID,
		PartnerName: partner.PartnerName,
		PartnerCode: partner.PartnerCode,
		IsActive:    partner.IsActive,
		CreatedAt:   partner.CreatedAt,
		UpdatedAt:   partner.UpdatedAt,
	}
}

func ToDomainGatewayAssignment(model *models.GatewayPartnerAssignmentModel) *domain.GatewayPartnerAssignment {
	return &domain.GatewayPartnerAssignment{
		ID:                   model.ID,
		GatewayPartnerID:     model.GatewayPartnerID,
		PaymentGatewayID:     model.PaymentGatewayID,
		AssignmentPercentage: model.AssignmentPercentage,
		IsActive:             model.IsActive,
	}
}

func ToGORMGatewayAssignment(assignment *domain.GatewayPartnerAssignment) *models.GatewayPartnerAssignmentModel {
	return &models.GatewayPartnerAssignmentModel{
		ID:                   assignment.ID,
		GatewayPartnerID:     assignment.GatewayPartnerID,
		PaymentGatewayID:     assignment.PaymentGatewayID,
		AssignmentPercentage: assignment.AssignmentPercentage,
		IsActive:             assignment.IsActive,
	}
}

func ToDomainSiteGateway(model *models.SiteGatewayModel) *domain.SiteGateway {
	return &domain.SiteGateway{
		ID:                  model.ID,
		SiteID:              model.SiteID,
		GatewayCode:         model.GatewayCode,
		WebsiteSharePercent: model.WebsiteSharePercent,
	}
}

func ToGORMSiteGateway(sg *domain.SiteGateway) *models.SiteGatewayModel {
	return &models.SiteGatewayModel{
		ID:                  sg.ID,
		SiteID:              sg.SiteID,
		GatewayCode:         sg.GatewayCode,
		WebsiteSharePercent: sg.WebsiteSharePercent,
	}
}
