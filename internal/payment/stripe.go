package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// RedirectURLs are the static targets Stripe sends the payer back to. They
// come from configuration, never from the request.
type RedirectURLs struct {
	SuccessURL string
	CancelURL  string
}

type StripeProvider struct {
	secretKey     string
	webhookSecret string
	redirects     RedirectURLs
}

func NewStripeProvider(secretKey, webhookSecret string, redirects RedirectURLs) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		redirects:     redirects,
	}
}

func (s *StripeProvider) CreateCheckoutSession(params SessionParams) (*SessionResult, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.Items))
	for _, item := range params.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(params.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: lineItems,
		// The order ID rides on the payment intent so it comes back in the
		// charge webhook's metadata.
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"orderId": params.OrderID,
			},
		},
		SuccessURL: stripe.String(s.redirects.SuccessURL),
		CancelURL:  stripe.String(s.redirects.CancelURL),
	}

	sess, err := session.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &SessionResult{
		CancelURL:  sess.CancelURL,
		SuccessURL: sess.SuccessURL,
		URL:        sess.URL,
	}, nil
}

func (s *StripeProvider) VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return event, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return event, nil
}
