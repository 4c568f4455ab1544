package domain

import (
	"context"
	"time"
)

// Site is an external store integration. The API secret is never held in
// plaintext: SecretHash is a bcrypt hash for verification, SecretEnc an
// AES-GCM blob the authenticator decrypts to compute HMAC signatures.
type Site struct {
	ID         string
	Name       string
	BaseURL    string
	APIKey     string
	SecretHash string
	SecretEnc  string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SiteRepository interface {
	CreateSite(ctx context.Context, site *Site) error
	GetSiteByID(ctx context.Context, siteID string) (*Site, error)
	// GetActiveSiteByAPIKey resolves only active sites so deactivation
	// blocks webhook auth without deleting history.
	GetActiveSiteByAPIKey(ctx context.Context, apiKey string) (*Site, error)
	GetSiteByBaseURL(ctx context.Context, baseURL string) (*Site, error)
	ListSites(ctx context.Context) ([]*Site, error)
	SetSiteActive(ctx context.Context, siteID string, active bool) error
}

// RequestNonce is a single-use replay-prevention record. Uniqueness of
// (site_id, nonce) is enforced by the store, not by a pre-check.
type RequestNonce struct {
	ID        string
	SiteID    string
	Nonce     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type NonceRepository interface {
	// InsertNonce atomically records the pair; returns ErrNonceReplayed if
	// the same (site, nonce) was already accepted.
	InsertNonce(ctx context.Context, nonce *RequestNonce) error
	DeleteExpiredNonces(ctx context.Context, now time.Time) (int64, error)
}
