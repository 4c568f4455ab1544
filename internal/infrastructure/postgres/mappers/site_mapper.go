package mappers

import (
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/postgres/models"
)

func ToDomainSite(model *models.SiteModel) *domain.Site {
	return &domain.Site{
		ID:         model.ID,
		Name:       model.Name,
		BaseURL:    model.BaseURL,
		APIKey:     model.APIKey,
		SecretHash: model.SecretHash,
		SecretEnc:  model.SecretEnc,
		IsActive:   model.IsActive,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMSite(site *domain.Site) *models.SiteModel {
	return &models.SiteModel{
		ID:         site.ID,
		Name:       site.Name,
		BaseURL:    site.BaseURL,
		APIKey:     site.APIKey,
		SecretHash: site.SecretHash,
		SecretEnc:  site.SecretEnc,
		IsActive:   site.IsActive,
		CreatedAt:  site.CreatedAt,
		UpdatedAt:  site.UpdatedAt,
	}
}

func ToDomainNonce(model *models.RequestNonceModel) *domain.RequestNonce {
	return &domain.RequestNonce{
		ID:        model.ID,
		SiteID:    model.SiteID,
		Nonce:     model.Nonce,
		IssuedAt:  model.IssuedAt,
		ExpiresAt: model.ExpiresAt,
	}
}

func ToGORMNonce(nonce *domain.RequestNonce) *models.RequestNonceModel {
	return &models.RequestNonceModel{
		ID:        nonce.ID,
		SiteID:    nonce.SiteID,
		Nonce:     nonce.Nonce,
		IssuedAt:  nonce.IssuedAt,
		ExpiresAt: nonce.ExpiresAt,
	}
}
