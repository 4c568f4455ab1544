package models

import "time"

type SiteModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Name       string `gorm:"not null"`
	BaseURL    string `gorm:"uniqueIndex;not null"`
	APIKey     string `gorm:"uniqueIndex;not null"`
	SecretHash string `gorm:"not null"`
	SecretEnc  string `gorm:"not null"`
	IsActive   bool   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SiteModel) TableName() string { return "sites" }

// RequestNonceModel enforces replay protection through the composite
// unique index: concurrent inserts of the same pair cannot both succeed.
type RequestNonceModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	SiteID    string `gorm:"type:uuid;uniqueIndex:idx_site_nonce;not null"`
	Nonce     string `gorm:"uniqueIndex:idx_site_nonce;not null"`
	IssuedAt  time.Time
	ExpiresAt time.Time `gorm:"index"`
}

func (RequestNonceModel) TableName() string { return "request_nonces" }
