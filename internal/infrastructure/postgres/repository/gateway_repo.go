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

type DefaultGatewayRepository struct {
	DB *gorm.DB
}

func NewDefaultGatewayRepository(db *gorm.DB) *DefaultGatewayRepository {
	return &DefaultGatewayRepository{DB: db}
}

func (r *DefaultGatewayRepository) CreateGatewayDetails(ctx context.Context, details *domain.PaymentGatewayDetails) error {
	if details.ID == "" {
		details.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(mappers.ToGORMGatewayDetails(details)).Error
}

func (r *DefaultGatewayRepository) GetGatewayDetailsByCode(ctx context.Context, gatewayCode string) (*domain.PaymentGatewayDetails, error) {
	var model models.PaymentGatewayDetailsModel
	err := r.DB.WithContext(ctx).First(&model, "gateway_code = ?", gatewayCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGatewayNotFound
		}
		return nil, err
	}
	return mappers.ToDomainGatewayDetails(&model), nil
}

func (r *DefaultGatewayRepository) ListGatewayDetails(ctx context.Context) ([]*domain.PaymentGatewayDetails, error) {
	var detailModels []models.PaymentGatewayDetailsModel
	if err := r.DB.WithContext(ctx).Order("gateway_code").Find(&detailModels).Error; err != nil {
		return nil, err
	}
	details := make([]*domain.PaymentGatewayDetails, len(detailModels))
	for i := range detailModels {
		details[i] = mappers.ToDomainGatewayDetails(&detailModels[i])
	}
	return details, nil
}

func (r *DefaultGatewayRepository) CreateGatewayPartner(ctx context.Context, partner *domain.GatewayPartner) error {
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(mappers.ToGORMGatewayPartner(partner)).Error
}

func (r *DefaultGatewayRepository) GetGatewayPartnerByID(ctx context.Context, partnerID string) (*domain.GatewayPartner, error) {
	var model models.GatewayPartnerModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", partnerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainGatewayPartner(&model), nil
}

func (r *DefaultGatewayRepository) ListGatewayPartners(ctx context.Context) ([]*domain.GatewayPartner, error) {
	var partnerModels []models.GatewayPartnerModel
	if err := r.DB.WithContext(ctx).Order("partner_name").Find(&partnerModels).Error; err != nil {
		return nil, err
	}
	partners := make([]*domain.GatewayPartner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = mappers.ToDomainGatewayPartner(&partnerModels[i])
	}
	return partners, nil
}

func (r *DefaultGatewayRepository) CreateGatewayPartnerAssignment(ctx context.Context, assignment *domain.GatewayPartnerAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(mappers.ToGORMGatewayAssignment(assignment)).Error
}

func (r *DefaultGatewayRepository) ListActiveAssignments(ctx context.Context) ([]*domain.GatewayPartnerAssignment, error) {
	var assignmentModels []models.GatewayPartnerAssignmentModel
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&assignmentModels).Error
	if err != nil {
		return nil, err
	}
	assignments := make([]*domain.GatewayPartnerAssignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = mappers.ToDomainGatewayAssignment(&assignmentModels[i])
	}
	return assignments, nil
}

func (r *DefaultGatewayRepository) GetSiteGateway(ctx context.Context, siteID, gatewayCode string) (*domain.SiteGateway, error) {
	var model models.SiteGatewayModel
	err := r.DB.WithContext(ctx).
		First(&model, "site_id = ? AND gateway_code = ?", siteID, gatewayCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGatewayNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSiteGateway(&model), nil
}

func (r *DefaultGatewayRepository) CreateSiteGateway(ctx context.Context, sg *domain.SiteGateway) error {
	if sg.ID == "" {
		sg.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(mappers.ToGORMSiteGateway(sg)).Error
}
