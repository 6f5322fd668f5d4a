package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
)

// StripeClient records billing-side state for committed conversions. The
// funnel never computes pricing or retries charges; Stripe owns payment
// state from here on.
type StripeClient struct{}

func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (c *StripeClient) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	cu, err := customer.New(params)
	if err != nil {
		middleware.RecordIntegrationError("stripe")
		return "", fmt.Errorf("stripe customer creation failed: %w", err)
	}
	return cu.ID, nil
}

func (c *StripeClient) CreateCharge(ctx context.Context, amountCents int64, currency, gatewayCustomerID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		Customer: stripe.String(gatewayCustomerID),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		middleware.RecordIntegrationError("stripe")
		return "", fmt.Errorf("stripe charge failed: %w", err)
	}
	return pi.ID, nil
}
