package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/crypto"
	"github.com/sirupsen/logrus"
)

const (
	// Accepted clock skew between a store and the hub, in either direction.
	timestampWindow = 10 * time.Minute
	// How long an accepted nonce is retained before the purge may drop it.
	nonceTTL = 15 * time.Minute
)

// AuthInput carries the envelope fields of a webhook request plus the
// raw payload values that enter the signature base. TotalRaw must be the
// exact textual form from the request body: re-encoding a number would
// change the signature.
type AuthInput struct {
	APIKey    string
	Nonce     string
	Timestamp string
	Signature string
	WcOrderID string
	TotalRaw  string
}

type WebhookAuthUsecase interface {
	Authenticate(ctx context.Context, input AuthInput) (*domain.Site, error)
}

type DefaultWebhookAuthUsecase struct {
	SiteRepo  domain.SiteRepository
	NonceRepo domain.NonceRepository
	Cipher    *crypto.SecretCipher
	Log       *logrus.Logger

	// Now is swappable in tests.
	Now func() time.Time
}

func NewDefaultWebhookAuthUsecase(
	siteRepo domain.SiteRepository,
	nonceRepo domain.NonceRepository,
	cipher *crypto.SecretCipher,
	log *logrus.Logger) *DefaultWebhookAuthUsecase {

	return &DefaultWebhookAuthUsecase{
		SiteRepo:  siteRepo,
		NonceRepo: nonceRepo,
		Cipher:    cipher,
		Log:       log,
		Now:       time.Now,
	}
}

// Authenticate validates one webhook request. The nonce is consumed before
// the signature check on purpose: a request that fails the signature still
// burns its nonce, so the same envelope cannot be retried by an attacker.
func (uc *DefaultWebhookAuthUsecase) Authenticate(ctx context.Context, input AuthInput) (*domain.Site, error) {
	// A zero timestamp is a missing field, not a stale one: envelopes that
	// never set the field decode to 0.
	if input.APIKey == "" || input.Nonce == "" || input.Timestamp == "" || input.Timestamp == "0" || input.Signature == "" {
		return nil, domain.ErrMissingAuthParams
	}

	site, err := uc.SiteRepo.GetActiveSiteByAPIKey(ctx, input.APIKey)
	if err != nil {
		uc.Log.WithField("reason", "unknown_api_key").Warn("webhook auth rejected")
		return nil, domain.ErrInvalidCredentials
	}

	ts, err := strconv.ParseInt(input.Timestamp, 10, 64)
	if err != nil {
		return nil, domain.ErrStaleTimestamp
	}
	now := uc.Now()
	drift := now.Sub(time.Unix(ts, 0))
	if drift > timestampWindow || drift < -timestampWindow {
		uc.Log.WithFields(logrus.Fields{
			"site_id": site.ID,
			"reason":  "stale_timestamp",
		}).Warn("webhook auth rejected")
		return nil, domain.ErrStaleTimestamp
	}

	err = uc.NonceRepo.InsertNonce(ctx, &domain.RequestNonce{
		ID:        uuid.NewString(),
		SiteID:    site.ID,
		Nonce:     input.Nonce,
		IssuedAt:  now,
		ExpiresAt: now.Add(nonceTTL),
	})
	if err != nil {
		if err == domain.ErrNonceReplayed {
			uc.Log.WithFields(logrus.Fields{
				"site_id": site.ID,
				"reason":  "nonce_replayed",
			}).Warn("webhook auth rejected")
			return nil, domain.ErrNonceReplayed
		}
		return nil, fmt.Errorf("recording nonce: %w", err)
	}

	secret, err := uc.Cipher.Decrypt(site.SecretEnc)
	if err != nil {
		return nil, fmt.Errorf("decrypting site secret: %w", err)
	}

	base := fmt.Sprintf("%s|%s|%s|%s|%s",
		input.APIKey, input.Timestamp, input.Nonce, input.WcOrderID, input.TotalRaw)
	if !crypto.VerifySignature(base, input.Signature, secret) {
		uc.Log.WithFields(logrus.Fields{
			"site_id": site.ID,
			"reason":  "invalid_signature",
		}).Warn("webhook auth rejected")
		return nil, domain.ErrInvalidSignature
	}

	return site, nil
}

// PurgeExpiredNonces removes replay records past their retention window.
func (uc *DefaultWebhookAuthUsecase) PurgeExpiredNonces(ctx context.Context) (int64, error) {
	return uc.NonceRepo.DeleteExpiredNonces(ctx, uc.Now())
}
