package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/orderhub/order-hub-service/internal/domain"
)

const defaultBaseURL = "https://api.aftership.com/v4"

// AfterShipClient implements domain.TrackingService against the AfterShip
// REST API.
type AfterShipClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAfterShipClient(apiKey string) *AfterShipClient {
	return &AfterShipClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewAfterShipClientWithBaseURL is used by tests to point at a local server.
func NewAfterShipClientWithBaseURL(apiKey, baseURL string) *AfterShipClient {
	client := NewAfterShipClient(apiKey)
	client.baseURL = strings.TrimRight(baseURL, "/")
	return client
}

type aftershipCheckpoint struct {
	CheckpointTime string `json:"checkpoint_time"`
	Location       string `json:"location"`
	Tag            string `json:"tag"`
	Message        string `json:"message"`
}

type aftershipTracking struct {
	TrackingNumber    string                `json:"tracking_number"`
	Slug              string                `json:"slug"`
	Tag               string                `json:"tag"`
	ExpectedDelivery  string                `json:"expected_delivery"`
	ShipmentDeliverAt string                `json:"shipment_delivery_date"`
	Checkpoints       []aftershipCheckpoint `json:"checkpoints"`
	UpdatedAt         string                `json:"updated_at"`
}

type aftershipResponse struct {
	Meta struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"meta"`
	Data struct {
		Tracking aftershipTracking `json:"tracking"`
	} `json:"data"`
}

func (c *AfterShipClient) GetLiveTracking(ctx context.Context, trackingNumber, carrier string) (*domain.TrackingResponse, error) {
	url := fmt.Sprintf("%s/trackings/%s/%s", c.baseURL, carrier, trackingNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("aftership-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting tracking: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("tracking provider returned %d", response.StatusCode)
	}

	var parsed aftershipResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding tracking response: %w", err)
	}

	return normalizeTracking(&parsed.Data.Tracking), nil
}

// normalizeTracking maps AfterShip's tag vocabulary onto the hub's shipment
// statuses.
func normalizeTracking(t *aftershipTracking) *domain.TrackingResponse {
	result := &domain.TrackingResponse{
		TrackingNumber: t.TrackingNumber,
		Carrier:        t.Slug,
		Status:         mapTag(t.Tag),
		LastUpdated:    parseTime(t.UpdatedAt),
	}

	if ts := t.ExpectedDelivery; ts != "" {
		parsed := parseTime(ts)
		result.EstimatedDelivery = &parsed
	}

	for _, cp := range t.Checkpoints {
		result.Events = append(result.Events, domain.TrackingEvent{
			Timestamp:   parseTime(cp.CheckpointTime),
			Location:    cp.Location,
			Status:      mapTag(cp.Tag),
			Description: cp.Message,
		})
		result.CurrentLocation = cp.Location
	}

	switch t.Tag {
	case "Delivered":
		result.IsDelivered = true
		if len(t.Checkpoints) > 0 {
			deliveredAt := parseTime(t.Checkpoints[len(t.Checkpoints)-1].CheckpointTime)
			result.DeliveredAt = &deliveredAt
		}
	case "Exception", "Expired":
		result.HasException = true
		if len(t.Checkpoints) > 0 {
			result.ExceptionMessage = t.Checkpoints[len(t.Checkpoints)-1].Message
		}
	}

	return result
}

func mapTag(tag string) string {
	switch tag {
	case "Delivered":
		return string(domain.ShipmentDelivered)
	case "InTransit", "OutForDelivery", "AttemptFail":
		return string(domain.ShipmentInTransit)
	case "InfoReceived", "Pending":
		return string(domain.ShipmentPending)
	case "Exception", "Expired":
		return string(domain.ShipmentException)
	default:
		return string(domain.ShipmentShipped)
	}
}

func parseTime(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-07:00", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
