package payment

import (
	"context"

	"hiredaily/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// Gateway is the external payment processor.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionStatus, error)
}

// StripeGateway opens Stripe Checkout sessions with a client bound to one
// secret key instead of the package-level stripe.Key.
type StripeGateway struct {
	client session.Client
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return NewStripeGatewayWithBackend(stripe.GetBackend(stripe.APIBackend), secretKey)
}

// NewStripeGatewayWithBackend talks to the given backend, e.g. one built by
// stripe.GetBackendWithConfig with a custom URL.
func NewStripeGatewayWithBackend(backend stripe.Backend, secretKey string) *StripeGateway {
	return &StripeGateway{client: session.Client{B: backend, Key: secretKey}}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(req.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(req.ProductName),
					Description: stripe.String(req.Description),
				},
				UnitAmount: stripe.Int64(req.Amount),
			},
			Quantity: stripe.Int64(1),
		}},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.BookingID),
	}
	params.Context = ctx
	params.AddMetadata(models.MetadataBookingID, req.BookingID)
	params.AddMetadata(models.MetadataCustomerID, req.CustomerID)

	s, err := g.client.New(params)
	if err != nil {
		return nil, err
	}
	return &models.CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.client.Get(sessionID, params)
	if err != nil {
		return nil, err
	}
	return &models.SessionStatus{
		SessionID: s.ID,
		Paid:      s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Metadata:  s.Metadata,
	}, nil
}
