package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/infrastructure/metrics"
	"github.com/orderhub/order-hub-service/internal/usecase"
)

// SiteContextKey is where the authenticated site lands in the echo context.
const SiteContextKey = "webhook_site"

// signatureEnvelope is the minimal first-pass parse: only the fields that
// enter the signature base. The full payload is bound again by the handler
// from the re-buffered body.
type signatureEnvelope struct {
	SiteAPIKey string          `json:"site_api_key"`
	Nonce      string          `json:"nonce"`
	Timestamp  json.Number     `json:"timestamp"`
	Signature  string          `json:"signature"`
	WcOrderID  string          `json:"wc_order_id"`
	Order      *orderSignature `json:"order"`
}

type orderSignature struct {
	WcOrderID  string          `json:"wc_order_id"`
	OrderTotal json.RawMessage `json:"order_total"`
}

// WebhookAuth authenticates store webhooks. shippingUpdate selects the
// signature base: order sync signs the order total, shipping updates sign a
// literal zero.
func WebhookAuth(auth usecase.WebhookAuthUsecase, hubMetrics *metrics.HubMetrics, endpoint string, shippingUpdate bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hubMetrics.WebhookRequestsTotal.WithLabelValues(endpoint).Inc()

			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			var envelope signatureEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				hubMetrics.WebhookRejectedTotal.WithLabelValues(endpoint, "malformed").Inc()
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
			}

			input := usecase.AuthInput{
				APIKey:    envelope.SiteAPIKey,
				Nonce:     envelope.Nonce,
				Timestamp: envelope.Timestamp.String(),
				Signature: envelope.Signature,
			}
			if shippingUpdate {
				input.WcOrderID = envelope.WcOrderID
				input.TotalRaw = "0"
			} else if envelope.Order != nil {
				input.WcOrderID = envelope.Order.WcOrderID
				input.TotalRaw = rawValue(envelope.Order.OrderTotal)
			}

			site, err := auth.Authenticate(c.Request().Context(), input)
			if err != nil {
				status, reason := classifyAuthError(err)
				hubMetrics.WebhookRejectedTotal.WithLabelValues(endpoint, reason).Inc()
				return c.JSON(status, map[string]string{"error": err.Error()})
			}

			c.Set(SiteContextKey, site)
			c.Request().Body = io.NopCloser(bytes.NewReader(body))
			return next(c)
		}
	}
}

// rawValue returns the exact textual form of a JSON scalar: quoted strings
// lose their quotes, numbers pass through untouched.
func rawValue(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func classifyAuthError(err error) (int, string) {
	switch err {
	case domain.ErrMissingAuthParams:
		return http.StatusBadRequest, "missing_fields"
	case domain.ErrInvalidCredentials:
		return http.StatusUnauthorized, "invalid_credentials"
	case domain.ErrStaleTimestamp:
		return http.StatusUnauthorized, "stale_timestamp"
	case domain.ErrNonceReplayed:
		return http.StatusUnauthorized, "nonce_replayed"
	case domain.ErrInvalidSignature:
		return http.StatusUnauthorized, "invalid_signature"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// SiteFromContext pulls the authenticated site set by WebhookAuth.
func SiteFromContext(c echo.Context) *domain.Site {
	site, _ := c.Get(SiteContextKey).(*domain.Site)
	return site
}
