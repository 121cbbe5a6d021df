package payment

import "github.com/stripe/stripe-go/v76"

// SessionLineItem is a line item with the amount already converted to integer
// minor units.
type SessionLineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type SessionParams struct {
	Currency string
	OrderID  string
	Items    []SessionLineItem
}

type SessionResult struct {
	CancelURL  string `json:"cancelUrl"`
	SuccessURL string `json:"successUrl"`
	URL        string `json:"url"`
}

// CheckoutProvider creates hosted checkout sessions with the upstream payment
// provider. Implementations make a single call and surface errors unchanged.
type CheckoutProvider interface {
	CreateCheckoutSession(params SessionParams) (*SessionResult, error)
}

// WebhookVerifier authenticates a webhook callback against the raw request
// body and the provider's signature header. Verification must run on the
// exact bytes received; re-serialized JSON would not match the signature.
type WebhookVerifier interface {
	VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error)
}
