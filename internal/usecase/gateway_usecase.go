package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/shopspring/decimal"
)

type GatewayUsecase interface {
	CreateGateway(ctx context.Context, details *domain.PaymentGatewayDetails) (*domain.PaymentGatewayDetails, error)
	ListGateways(ctx context.Context) ([]*domain.PaymentGatewayDetails, error)
	CreateGatewayPartner(ctx context.Context, name, code string) (*domain.GatewayPartner, error)
	AssignGatewayPartner(ctx context.Context, gatewayPartnerID, gatewayCode string, percentage decimal.Decimal) (*domain.GatewayPartnerAssignment, error)
	CreateSiteGateway(ctx context.Context, siteID, gatewayCode string, websiteSharePercent decimal.Decimal) (*domain.SiteGateway, error)
}

type DefaultGatewayUsecase struct {
	GatewayRepo domain.GatewayRepository
	SiteRepo    domain.SiteRepository
}

func NewDefaultGatewayUsecase(gatewayRepo domain.GatewayRepository, siteRepo domain.SiteRepository) *DefaultGatewayUsecase {
	return &DefaultGatewayUsecase{
		GatewayRepo: gatewayRepo,
		SiteRepo:    siteRepo,
	}
}

func (uc *DefaultGatewayUsecase) CreateGateway(ctx context.Context, details *domain.PaymentGatewayDetails) (*domain.PaymentGatewayDetails, error) {
	if details.ID == "" {
		details.ID = uuid.NewString()
	}
	details.CreatedAt = time.Now().UTC()
	details.UpdatedAt = details.CreatedAt
	if err := uc.GatewayRepo.CreateGatewayDetails(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (uc *DefaultGatewayUsecase) ListGateways(ctx context.Context) ([]*domain.PaymentGatewayDetails, error) {
	return uc.GatewayRepo.ListGatewayDetails(ctx)
}

func (uc *DefaultGatewayUsecase) CreateGatewayPartner(ctx context.Context, name, code string) (*domain.GatewayPartner, error) {
	partner := &domain.GatewayPartner{
		ID:          uuid.NewString(),
		PartnerName: name,
		PartnerCode: code,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := uc.GatewayRepo.CreateGatewayPartner(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (uc *DefaultGatewayUsecase) AssignGatewayPartner(ctx context.Context, gatewayPartnerID, gatewayCode string, percentage decimal.Decimal) (*domain.GatewayPartnerAssignment, error) {
	details, err := uc.GatewayRepo.GetGatewayDetailsByCode(ctx, gatewayCode)
	if err != nil {
		return nil, err
	}
	if _, err := uc.GatewayRepo.GetGatewayPartnerByID(ctx, gatewayPartnerID); err != nil {
		return nil, err
	}

	assignment := &domain.GatewayPartnerAssignment{
		ID:                   uuid.NewString(),
		GatewayPartnerID:     gatewayPartnerID,
		PaymentGatewayID:     details.ID,
		AssignmentPercentage: percentage,
		IsActive:             true,
	}
	if err := uc.GatewayRepo.CreateGatewayPartnerAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (uc *DefaultGatewayUsecase) CreateSiteGateway(ctx context.Context, siteID, gatewayCode string, websiteSharePercent decimal.Decimal) (*domain.SiteGateway, error) {
	if _, err := uc.SiteRepo.GetSiteByID(ctx, siteID); err != nil {
		return nil, err
	}
	sg := &domain.SiteGateway{
		ID:                  uuid.NewString(),
		SiteID:              siteID,
		GatewayCode:         gatewayCode,
		WebsiteSharePercent: websiteSharePercent,
	}
	if err := uc.GatewayRepo.CreateSiteGateway(ctx, sg); err != nil {
		return nil, err
	}
	return sg, nil
}
