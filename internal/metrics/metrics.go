package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	SessionsCreated prometheus.Counter
	// Labeled by event type and outcome (emitted, duplicate, ignored,
	// emit_failed).
	WebhookEvents *prometheus.CounterVec
	// Labeled by reason (missing_signature, invalid_signature).
	WebhookRejected *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	sessions := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "payments",
		Subsystem: "api",
		Name:      "checkout_sessions_created_total",
		Help:      "Total number of checkout sessions created.",
	})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payments",
		Subsystem: "api",
		Name:      "webhook_events_total",
		Help:      "Verified webhook events by type and outcome.",
	}, []string{"type", "outcome"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payments",
		Subsystem: "api",
		Name:      "webhook_rejected_total",
		Help:      "Webhook callbacks rejected before dispatch.",
	}, []string{"reason"})

	reg.MustRegister(sessions, events, rejected)
	return &Metrics{SessionsCreated: sessions, WebhookEvents: events, WebhookRejected: rejected}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
