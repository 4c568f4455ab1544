package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/mappers"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPartnerRepository struct {
	DB *gorm.DB
}

func NewDefaultPartnerRepository(db *gorm.DB) *DefaultPartnerRepository {
	return &DefaultPartnerRepository{DB: db}
}

func (r *DefaultPartnerRepository) CreatePartner(ctx context.Context, partner *domain.Partner) error {
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(mappers.ToGORMPartner(partner)).Error
}

func (r *DefaultPartnerRepository) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	var model models.PartnerModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", partnerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPartner(&model), nil
}

func (r *DefaultPartnerRepository) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	var partnerModels []models.PartnerModel
	if err := r.DB.WithContext(ctx).Order("name").Find(&partnerModels).Error; err != nil {
		return nil, err
	}
	partners := make([]*domain.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = mappers.ToDomainPartner(&partnerModels[i])
	}
	return partners, nil
}

func (r *DefaultPartnerRepository) ListActiveSitePartnerAssignments(ctx context.Context, siteID string) ([]*domain.SitePartnerAssignment, error) {
	var assignmentModels []models.SitePartnerModel
	err := r.DB.WithContext(ctx).
		Where("site_id = ? AND is_active = ?", siteID, true).
		Find(&assignmentModels).Error
	if err != nil {
		return nil, err
	}
	assignments := make([]*domain.SitePartnerAssignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = mappers.ToDomainSitePartner(&assignmentModels[i])
	}
	return assignments, nil
}

func (r *DefaultPartnerRepository) CreateSitePartnerAssignment(ctx context.Context, assignment *domain.SitePartnerAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(mappers.ToGORMSitePartner(assignment)).Error
}

type DefaultPartnerOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultPartnerOrderRepository(db *gorm.DB) *DefaultPartnerOrderRepository {
	return &DefaultPartnerOrderRepository{DB: db}
}

// UpsertPartnerOrder keeps one ledger row per (partner, order). Paid state
// is deliberately left out of the conflict update so a re-sync cannot
// reopen a settled row.
func (r *DefaultPartnerOrderRepository) UpsertPartnerOrder(ctx context.Context, po *domain.PartnerOrder) error {
	if po.ID == "" {
		po.ID = uuid.NewString()
	}
	model := mappers.ToGORMPartnerOrder(po)
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "partner_id"}, {Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"order_total", "share_amount", "share_type",
			"share_percentage", "updated_at",
		}),
	}).Create(model).Error
}

func (r *DefaultPartnerOrderRepository) ListPartnerOrdersByOrder(ctx context.Context, orderID string) ([]*domain.PartnerOrder, error) {
	var poModels []models.PartnerOrderModel
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&poModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainPartnerOrders(poModels), nil
}

func (r *DefaultPartnerOrderRepository) ListPartnerOrdersByPartner(ctx context.Context, partnerID string) ([]*domain.PartnerOrder, error) {
	var poModels []models.PartnerOrderModel
	err := r.DB.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&poModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainPartnerOrders(poModels), nil
}

func (r *DefaultPartnerOrderRepository) MarkPartnerOrderPaid(ctx context.Context, partnerOrderID string, paidAt time.Time) error {
	result := r.DB.WithContext(ctx).Model(&models.PartnerOrderModel{}).
		Where("id = ?", partnerOrderID).
		Updates(map[string]interface{}{
			"is_paid": true,
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPartnerOrderNotFound
	}
	return nil
}

func toDomainPartnerOrders(poModels []models.PartnerOrderModel) []*domain.PartnerOrder {
	partnerOrders := make([]*domain.PartnerOrder, len(poModels))
	for i := range poModels {
		partnerOrders[i] = mappers.ToDomainPartnerOrder(&poModels[i])
	}
	return partnerOrders
}

type DefaultRevenueShareRepository struct {
	DB *gorm.DB
}

func NewDefaultRevenueShareRepository(db *gorm.DB) *DefaultRevenueShareRepository {
	return &DefaultRevenueShareRepository{DB: db}
}

func (r *DefaultRevenueShareRepository) ReplaceRevenueShares(ctx context.Context, orderID string, shares []*domain.RevenueShare) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.RevenueShareModel{}).Error; err != nil {
			return err
		}
		for _, share := range shares {
			if share.ID == "" {
				share.ID = uuid.NewString()
			}
			if err := tx.Create(mappers.ToGORMRevenueShare(share)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultRevenueShareRepository) ListRevenueSharesByOrder(ctx context.Context, orderID string) ([]*domain.RevenueShare, error) {
	var shareModels []models.RevenueShareModel
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&shareModels).Error
	if err != nil {
		return nil, err
	}
	shares := make([]*domain.RevenueShare, len(shareModels))
	for i := range shareModels {
		shares[i] = mappers.ToDomainRevenueShare(&shareModels[i])
	}
	return shares, nil
}
