package repository

import (
	"context"
	"errors"
	"time"

	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/mappers"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSiteRepository struct {
	DB *gorm.DB
}

func NewDefaultSiteRepository(db *gorm.DB) *DefaultSiteRepository {
	return &DefaultSiteRepository{DB: db}
}

func (r *DefaultSiteRepository) CreateSite(ctx context.Context, site *domain.Site) error {
	if err := r.DB.WithContext(ctx).Create(mappers.ToGORMSite(site)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSiteExists
		}
		return err
	}
	return nil
}

func (r *DefaultSiteRepository) GetSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	var model models.SiteModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", siteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSite(&model), nil
}

func (r *DefaultSiteRepository) GetActiveSiteByAPIKey(ctx context.Context, apiKey string) (*domain.Site, error) {
	var model models.SiteModel
	err := r.DB.WithContext(ctx).
		First(&model, "api_key = ? AND is_active = ?", apiKey, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSite(&model), nil
}

func (r *DefaultSiteRepository) GetSiteByBaseURL(ctx context.Context, baseURL string) (*domain.Site, error) {
	var model models.SiteModel
	if err := r.DB.WithContext(ctx).First(&model, "base_url = ?", baseURL).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSite(&model), nil
}

func (r *DefaultSiteRepository) ListSites(ctx context.Context) ([]*domain.Site, error) {
	var siteModels []models.SiteModel
	if err := r.DB.WithContext(ctx).Order("name").Find(&siteModels).Error; err != nil {
		return nil, err
	}
	sites := make([]*domain.Site, len(siteModels))
	for i := range siteModels {
		sites[i] = mappers.ToDomainSite(&siteModels[i])
	}
	return sites, nil
}

func (r *DefaultSiteRepository) SetSiteActive(ctx context.Context, siteID string, active bool) error {
	result := r.DB.WithContext(ctx).Model(&models.SiteModel{}).
		Where("id = ?", siteID).
		Updates(map[string]interface{}{"is_active": active, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

type DefaultNonceRepository struct {
	DB *gorm.DB
}

func NewDefaultNonceRepository(db *gorm.DB) *DefaultNonceRepository {
	return &DefaultNonceRepository{DB: db}
}

// InsertNonce relies on the (site_id, nonce) unique index: the insert races
// cleanly, so two concurrent requests with the same nonce cannot both pass.
func (r *DefaultNonceRepository) InsertNonce(ctx context.Context, nonce *domain.RequestNonce) error {
	if err := r.DB.WithContext(ctx).Create(mappers.ToGORMNonce(nonce)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrNonceReplayed
		}
		return err
	}
	return nil
}

func (r *DefaultNonceRepository) DeleteExpiredNonces(ctx context.Context, now time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.RequestNonceModel{})
	return result.RowsAffected, result.Error
}
