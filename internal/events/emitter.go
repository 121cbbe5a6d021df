package events

import (
	"context"
	"log"
)

// PaymentSucceededTopic is the only event this service emits downstream.
const PaymentSucceededTopic = "payment.succeeded"

// PaymentConfirmedMessage is the outbound contract for a confirmed payment.
// Constructed fresh per webhook event and never mutated after construction.
type PaymentConfirmedMessage struct {
	StripePaymentID string `json:"stripePaymentId"`
	OrderID         string `json:"orderId"`
	ReceiptURL      string `json:"receiptUrl"`
}

type Emitter interface {
	Emit(ctx context.Context, msg PaymentConfirmedMessage) error
}

// LogEmitter is the fallback when no broker is configured: confirmations are
// logged instead of published.
type LogEmitter struct{}

func NewLogEmitter() *LogEmitter {
	return &LogEmitter{}
}

func (e *LogEmitter) Emit(ctx context.Context, msg PaymentConfirmedMessage) error {
	log.Printf("payment.succeeded order=%s payment=%s receipt=%s", msg.OrderID, msg.StripePaymentID, msg.ReceiptURL)
	return nil
}
