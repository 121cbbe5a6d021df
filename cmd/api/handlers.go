package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/payrelay/payments-service/internal/events"
	"github.com/payrelay/payments-service/internal/metrics"
	"github.com/payrelay/payments-service/internal/payment"
	"github.com/stripe/stripe-go/v76"
)

type apiConfig struct {
	provider payment.CheckoutProvider
	verifier payment.WebhookVerifier
	emitter  events.Emitter
	deduper  events.Deduper
	metrics  *metrics.Metrics
}

func (cfg *apiConfig) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (cfg *apiConfig) createPaymentSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req payment.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ApiError{
			Code:    "INVALID_REQUEST",
			Message: "Invalid request body",
		})
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, ApiError{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := cfg.provider.CreateCheckoutSession(payment.SessionParams{
		Currency: req.Currency,
		OrderID:  req.OrderID,
		Items:    payment.BuildLineItems(req.Items),
	})
	if err != nil {
		respondWithError(w, http.StatusBadGateway, ApiError{
			Code:    "PAYMENT_ERROR",
			Message: "Failed to create payment session",
			Details: err.Error(),
		})
		return
	}

	cfg.metrics.SessionsCreated.Inc()

	respondWithJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    result,
	})
}

func (cfg *apiConfig) stripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	// The raw bytes must reach the verifier untouched; a re-serialized body
	// would not match the signature.
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" || len(r.Header.Values("Stripe-Signature")) != 1 {
		cfg.metrics.WebhookRejected.WithLabelValues("missing_signature").Inc()
		http.Error(w, "Missing or invalid Stripe signature", http.StatusBadRequest)
		return
	}

	event, err := cfg.verifier.VerifyWebhookSignature(payload, signature)
	if err != nil {
		cfg.metrics.WebhookRejected.WithLabelValues("invalid_signature").Inc()
		http.Error(w, fmt.Sprintf("Webhook Error: %v", err), http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "charge.succeeded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			log.Printf("Failed to parse charge payload for event %s: %v", event.ID, err)
			cfg.metrics.WebhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
			break
		}

		cfg.relayConfirmation(r.Context(), string(event.Type), events.PaymentConfirmedMessage{
			StripePaymentID: charge.ID,
			OrderID:         charge.Metadata["orderId"],
			ReceiptURL:      charge.ReceiptURL,
		})

	default:
		log.Printf("Event %s not handled", event.Type)
		cfg.metrics.WebhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
	}

	// Stripe retries on any non-2xx, so unhandled types and downstream
	// failures still ack.
	respondWithJSON(w, http.StatusOK, map[string]string{"signature": signature})
}

// relayConfirmation sends a confirmed payment downstream. Failures are logged
// and counted but never change the webhook response.
func (cfg *apiConfig) relayConfirmation(ctx context.Context, eventType string, msg events.PaymentConfirmedMessage) {
	if cfg.deduper != nil {
		seen, err := cfg.deduper.Seen(ctx, msg.StripePaymentID)
		if err != nil {
			log.Printf("Dedup check failed for payment %s: %v", msg.StripePaymentID, err)
		} else if seen {
			log.Printf("Duplicate delivery for payment %s, skipping emit", msg.StripePaymentID)
			cfg.metrics.WebhookEvents.WithLabelValues(eventType, "duplicate").Inc()
			return
		}
	}

	if err := cfg.emitter.Emit(ctx, msg); err != nil {
		log.Printf("Failed to emit confirmation for order %s: %v", msg.OrderID, err)
		cfg.metrics.WebhookEvents.WithLabelValues(eventType, "emit_failed").Inc()
		return
	}

	cfg.metrics.WebhookEvents.WithLabelValues(eventType, "emitted").Inc()
}
