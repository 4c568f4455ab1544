package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/shopspring/decimal"
)

type PartnerUsecase interface {
	CreatePartner(ctx context.Context, name, email string) (*domain.Partner, error)
	ListPartners(ctx context.Context) ([]*domain.Partner, error)
	AssignPartnerToSite(ctx context.Context, siteID, partnerID string, shareType domain.ShareType, sharePercentage decimal.Decimal) (*domain.SitePartnerAssignment, error)
	ListPartnerOrders(ctx context.Context, partnerID string) ([]*domain.PartnerOrder, error)
	MarkPartnerOrderPaid(ctx context.Context, partnerOrderID string) error
}

type DefaultPartnerUsecase struct {
	PartnerRepo      domain.PartnerRepository
	PartnerOrderRepo domain.PartnerOrderRepository
	SiteRepo         domain.SiteRepository
}

func NewDefaultPartnerUsecase(
	partnerRepo domain.PartnerRepository,
	partnerOrderRepo domain.PartnerOrderRepository,
	siteRepo domain.SiteRepository) *DefaultPartnerUsecase {

	return &DefaultPartnerUsecase{
		PartnerRepo:      partnerRepo,
		PartnerOrderRepo: partnerOrderRepo,
		SiteRepo:         siteRepo,
	}
}

func (uc *DefaultPartnerUsecase) CreatePartner(ctx context.Context, name, email string) (*domain.Partner, error) {
	partner := &domain.Partner{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.PartnerRepo.CreatePartner(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (uc *DefaultPartnerUsecase) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	return uc.PartnerRepo.ListPartners(ctx)
}

func (uc *DefaultPartnerUsecase) AssignPartnerToSite(ctx context.Context, siteID, partnerID string, shareType domain.ShareType, sharePercentage decimal.Decimal) (*domain.SitePartnerAssignment, error) {
	if _, err := uc.SiteRepo.GetSiteByID(ctx, siteID); err != nil {
		return nil, err
	}
	if _, err := uc.PartnerRepo.GetPartnerByID(ctx, partnerID); err != nil {
		return nil, err
	}

	assignment := &domain.SitePartnerAssignment{
		ID:              uuid.NewString(),
		SiteID:          siteID,
		PartnerID:       partnerID,
		ShareType:       shareType,
		SharePercentage: sharePercentage,
		IsActive:        true,
	}
	if err := uc.PartnerRepo.CreateSitePartnerAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (uc *DefaultPartnerUsecase) ListPartnerOrders(ctx context.Context, partnerID string) ([]*domain.PartnerOrder, error) {
	return uc.PartnerOrderRepo.ListPartnerOrdersByPartner(ctx, partnerID)
}

func (uc *DefaultPartnerUsecase) MarkPartnerOrderPaid(ctx context.Context, partnerOrderID string) error {
	return uc.PartnerOrderRepo.MarkPartnerOrderPaid(ctx, partnerOrderID, time.Now().UTC())
}
