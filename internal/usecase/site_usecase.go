package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/crypto"
	sitedto "github.com/orderhub/order-hub-service/internal/usecase/dto/site"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type SiteUsecase interface {
	ProvisionSite(ctx context.Context, name, baseURL string) (*sitedto.ProvisionedSite, error)
	GetSite(ctx context.Context, siteID string) (*sitedto.SiteOutput, error)
	ListSites(ctx context.Context) ([]*sitedto.SiteOutput, error)
	SetSiteActive(ctx context.Context, siteID string, active bool) error
}

type DefaultSiteUsecase struct {
	SiteRepo domain.SiteRepository
	Cipher   *crypto.SecretCipher
	Log      *logrus.Logger
}

func NewDefaultSiteUsecase(siteRepo domain.SiteRepository, cipher *crypto.SecretCipher, log *logrus.Logger) *DefaultSiteUsecase {
	return &DefaultSiteUsecase{
		SiteRepo: siteRepo,
		Cipher:   cipher,
		Log:      log,
	}
}

// ProvisionSite creates a store integration and issues its credentials.
// The plaintext secret exists only in the returned value; at rest it is a
// bcrypt hash plus an AES-GCM blob for the signature verifier.
func (uc *DefaultSiteUsecase) ProvisionSite(ctx context.Context, name, baseURL string) (*sitedto.ProvisionedSite, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	if existing, err := uc.SiteRepo.GetSiteByBaseURL(ctx, baseURL); err == nil && existing != nil {
		return nil, domain.ErrSiteExists
	}

	apiKey, err := crypto.NewAPIKey()
	if err != nil {
		return nil, fmt.Errorf("generating api key: %w", err)
	}
	apiSecret, err := crypto.NewAPISecret()
	if err != nil {
		return nil, fmt.Errorf("generating api secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(apiSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing api secret: %w", err)
	}
	enc, err := uc.Cipher.Encrypt(apiSecret)
	if err != nil {
		return nil, fmt.Errorf("encrypting api secret: %w", err)
	}

	site := &domain.Site{
		ID:         uuid.NewString(),
		Name:       name,
		BaseURL:    baseURL,
		APIKey:     apiKey,
		SecretHash: string(hash),
		SecretEnc:  enc,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := uc.SiteRepo.CreateSite(ctx, site); err != nil {
		return nil, fmt.Errorf("creating site: %w", err)
	}

	uc.Log.WithFields(logrus.Fields{
		"site_id":  site.ID,
		"base_url": site.BaseURL,
	}).Info("site provisioned")

	return &sitedto.ProvisionedSite{
		SiteOutput: toSiteOutput(site),
		APISecret:  apiSecret,
	}, nil
}

func (uc *DefaultSiteUsecase) GetSite(ctx context.Context, siteID string) (*sitedto.SiteOutput, error) {
	site, err := uc.SiteRepo.GetSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	out := toSiteOutput(site)
	return &out, nil
}

func (uc *DefaultSiteUsecase) ListSites(ctx context.Context) ([]*sitedto.SiteOutput, error) {
	sites, err := uc.SiteRepo.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]*sitedto.SiteOutput, len(sites))
	for i, site := range sites {
		out := toSiteOutput(site)
		outputs[i] = &out
	}
	return outputs, nil
}

func (uc *DefaultSiteUsecase) SetSiteActive(ctx context.Context, siteID string, active bool) error {
	if err := uc.SiteRepo.SetSiteActive(ctx, siteID, active); err != nil {
		return err
	}
	uc.Log.WithFields(logrus.Fields{
		"site_id": siteID,
		"active":  active,
	}).Info("site activation changed")
	return nil
}

func toSiteOutput(site *domain.Site) sitedto.SiteOutput {
	return sitedto.SiteOutput{
		ID:        site.ID,
		Name:      site.Name,
		BaseURL:   site.BaseURL,
		APIKey:    site.APIKey,
		IsActive:  site.IsActive,
		CreatedAt: site.CreatedAt,
	}
}
