package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HubMetrics holds every counter the hub exports on /metrics.
type HubMetrics struct {
	WebhookRequestsTotal  prometheus.CounterVec
	WebhookRejectedTotal  prometheus.CounterVec
	OrdersSyncedTotal     prometheus.CounterVec
	OrdersSyncedAmount    prometheus.CounterVec
	AllocationRunsTotal   prometheus.CounterVec
	AllocationWarnings    prometheus.CounterVec
	ShipmentRefreshTotal  prometheus.CounterVec
	TrackingLookupSeconds prometheus.HistogramVec
	WebhookDuration       prometheus.HistogramVec
}

func NewHubMetrics() *HubMetrics {
	return &HubMetrics{
		WebhookRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_requests_total",
				Help: "Webhook requests received, by endpoint",
			},
			[]string{"endpoint"},
		),

		WebhookRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_rejected_total",
				Help: "Webhook requests rejected by authentication, by reason",
			},
			[]string{"endpoint", "reason"},
		),

		OrdersSyncedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_synced_total",
				Help: "Orders upserted from store webhooks",
			},
			[]string{"site_id", "status"},
		),

		OrdersSyncedAmount: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_synced_amount_total",
				Help: "Total USD value of synced orders",
			},
			[]string{"site_id"},
		),

		AllocationRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allocation_runs_total",
				Help: "Revenue allocation passes, by outcome",
			},
			[]string{"outcome"},
		),

		AllocationWarnings: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allocation_warnings_total",
				Help: "Orders synced with no active partner assignments",
			},
			[]string{"site_id"},
		),

		ShipmentRefreshTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipment_refresh_total",
				Help: "Shipment tracking refreshes, by outcome",
			},
			[]string{"outcome"},
		),

		TrackingLookupSeconds: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tracking_lookup_duration_seconds",
				Help:    "Latency of carrier tracking lookups",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"carrier"},
		),

		WebhookDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webhook_processing_duration_seconds",
				Help:    "End-to-end webhook processing time",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}
