package sitedto

import "time"

type SiteOutput struct {
	ID        string
	Name      string
	BaseURL   string
	APIKey    string
	IsActive  bool
	CreatedAt time.Time
}

// ProvisionedSite is returned exactly once from site creation: it is the
// only place the plaintext secret ever leaves the service.
type ProvisionedSite struct {
	SiteOutput
	APISecret string
}
