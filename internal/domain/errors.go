package domain

import "errors"

// Webhook authentication rejections. Handlers map these to 400/401 without
// leaking anything beyond the category.
var (
	ErrMissingAuthParams  = errors.New("missing authentication parameters")
	ErrInvalidCredentials = errors.New("invalid API key")
	ErrStaleTimestamp     = errors.New("request timestamp too old or too new")
	ErrNonceReplayed      = errors.New("nonce already used")
	ErrInvalidSignature   = errors.New("invalid signature")
)

var (
	ErrSiteNotFound         = errors.New("site not found")
	ErrSiteExists           = errors.New("site with this base URL already exists")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPartnerNotFound      = errors.New("partner not found")
	ErrPartnerOrderNotFound = errors.New("partner order not found")
	ErrShipmentNotFound     = errors.New("shipment not found")
	ErrShipmentExists       = errors.New("shipment already exists for this order")
	ErrGatewayNotFound      = errors.New("payment gateway not found")
	ErrProfitNotFound       = errors.New("profit calculation not found")
	ErrInvalidOrderTotal    = errors.New("invalid order total format")
)
