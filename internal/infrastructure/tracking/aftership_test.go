package tracking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orderhub/order-hub-service/internal/domain"
)

const deliveredResponse = `{
  "meta": {"code": 200},
  "data": {
    "tracking": {
      "tracking_number": "RR123456789GB",
      "slug": "royal-mail",
      "tag": "Delivered",
      "expected_delivery": "2026-03-04",
      "updated_at": "2026-03-04T16:20:00Z",
      "checkpoints": [
        {"checkpoint_time": "2026-03-02T08:00:00Z", "location": "Heathrow", "tag": "InTransit", "message": "Departed facility"},
        {"checkpoint_time": "2026-03-04T15:45:00Z", "location": "London N1", "tag": "Delivered", "message": "Delivered to recipient"}
      ]
    }
  }
}`

func TestGetLiveTracking(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("aftership-api-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(deliveredResponse))
	}))
	defer server.Close()

	client := NewAfterShipClientWithBaseURL("test-key", server.URL)
	resp, err := client.GetLiveTracking(context.Background(), "RR123456789GB", "royal-mail")
	if err != nil {
		t.Fatalf("GetLiveTracking: %v", err)
	}

	if gotPath != "/trackings/royal-mail/RR123456789GB" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}

	if resp.Status != string(domain.ShipmentDelivered) {
		t.Errorf("status = %q, want delivered", resp.Status)
	}
	if !resp.IsDelivered {
		t.Error("IsDelivered not set")
	}
	if resp.DeliveredAt == nil {
		t.Fatal("DeliveredAt not set")
	}
	if resp.DeliveredAt.Hour() != 15 || resp.DeliveredAt.Minute() != 45 {
		t.Errorf("DeliveredAt = %v, want last checkpoint time", resp.DeliveredAt)
	}
	if resp.CurrentLocation != "London N1" {
		t.Errorf("current location = %q", resp.CurrentLocation)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("event count = %d, want 2", len(resp.Events))
	}
	if resp.Events[0].Status != string(domain.ShipmentInTransit) {
		t.Errorf("first event status = %q", resp.Events[0].Status)
	}
	if resp.EstimatedDelivery == nil {
		t.Error("EstimatedDelivery not parsed from date-only layout")
	}
}

func TestGetLiveTrackingException(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "meta": {"code": 200},
  "data": {"tracking": {
    "tracking_number": "X1",
    "slug": "dhl",
    "tag": "Exception",
    "checkpoints": [{"checkpoint_time": "2026-03-02T08:00:00Z", "location": "Leipzig", "tag": "Exception", "message": "Address incomplete"}]
  }}
}`))
	}))
	defer server.Close()

	client := NewAfterShipClientWithBaseURL("k", server.URL)
	resp, err := client.GetLiveTracking(context.Background(), "X1", "dhl")
	if err != nil {
		t.Fatalf("GetLiveTracking: %v", err)
	}
	if !resp.HasException {
		t.Error("HasException not set")
	}
	if resp.ExceptionMessage != "Address incomplete" {
		t.Errorf("exception message = %q", resp.ExceptionMessage)
	}
	if resp.Status != string(domain.ShipmentException) {
		t.Errorf("status = %q, want exception", resp.Status)
	}
}

func TestGetLiveTrackingErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"meta":{"code":4004,"message":"tracking not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewAfterShipClientWithBaseURL("k", server.URL)
	if _, err := client.GetLiveTracking(context.Background(), "missing", "dhl"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestMapTag(t *testing.T) {
	cases := map[string]string{
		"Delivered":      string(domain.ShipmentDelivered),
		"InTransit":      string(domain.ShipmentInTransit),
		"OutForDelivery": string(domain.ShipmentInTransit),
		"AttemptFail":    string(domain.ShipmentInTransit),
		"InfoReceived":   string(domain.ShipmentPending),
		"Pending":        string(domain.ShipmentPending),
		"Exception":      string(domain.ShipmentException),
		"Expired":        string(domain.ShipmentException),
		"SomethingNew":   string(domain.ShipmentShipped),
	}
	for tag, want := range cases {
		if got := mapTag(tag); got != want {
			t.Errorf("mapTag(%q) = %q, want %q", tag, got, want)
		}
	}
}
